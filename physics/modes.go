package physics

import "fmt"

var (
	tensionModeNames  = [...]string{TensionPull: "pull", TensionSpring: "spring"}
	pressureModeNames = [...]string{PressureNormal: "normal", PressureRadial: "radial"}
	pressureGateNames = [...]string{PressureDeficit: "deficit", PressureAlways: "always"}
)

func (m TensionMode) String() string {
	if int(m) < len(tensionModeNames) {
		return tensionModeNames[m]
	}
	return fmt.Sprintf("TensionMode(%d)", m)
}

func (m PressureMode) String() string {
	if int(m) < len(pressureModeNames) {
		return pressureModeNames[m]
	}
	return fmt.Sprintf("PressureMode(%d)", m)
}

func (g PressureGate) String() string {
	if int(g) < len(pressureGateNames) {
		return pressureGateNames[g]
	}
	return fmt.Sprintf("PressureGate(%d)", g)
}

func (m TensionMode) MarshalText() ([]byte, error)  { return []byte(m.String()), nil }
func (m PressureMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (g PressureGate) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (m *TensionMode) UnmarshalText(b []byte) error {
	i, err := lookup(tensionModeNames[:], string(b), "tension_mode")
	*m = TensionMode(i)
	return err
}

func (m *PressureMode) UnmarshalText(b []byte) error {
	i, err := lookup(pressureModeNames[:], string(b), "pressure_mode")
	*m = PressureMode(i)
	return err
}

func (g *PressureGate) UnmarshalText(b []byte) error {
	i, err := lookup(pressureGateNames[:], string(b), "pressure_gate")
	*g = PressureGate(i)
	return err
}

func lookup(names []string, s, field string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q not one of %v", ErrInvalidProfile, field, s, names)
}
