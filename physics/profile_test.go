package physics

import (
	"errors"
	"math"
	"testing"
)

func TestPresetsValidate(t *testing.T) {
	for _, name := range PresetNames() {
		p, ok := Preset(name)
		if !ok {
			t.Fatalf("Expected preset %q", name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("Preset %q invalid: %v", name, err)
		}
		if p.Name != name {
			t.Errorf("Expected name %q, got %q", name, p.Name)
		}
	}
}

func TestPresetLookup(t *testing.T) {
	names := PresetNames()
	want := []string{"blob", "elastic", "prototype"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, names)
		}
	}

	p, ok := Preset("BLOB")
	if !ok {
		t.Fatal("Expected case-insensitive lookup")
	}
	p.Tension = 0
	if Blob.Tension == 0 {
		t.Error("Expected Preset to return a copy")
	}
	if _, ok := Preset("jelly"); ok {
		t.Error("Expected unknown preset to fail")
	}
}

func TestProfileValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"negative tension", func(p *Profile) { p.Tension = -1 }},
		{"nan pressure", func(p *Profile) { p.Pressure = math.NaN() }},
		{"inf gravity", func(p *Profile) { p.Gravity = math.Inf(1) }},
		{"damping above one", func(p *Profile) { p.Damping = 1.5 }},
		{"zero min distance", func(p *Profile) { p.MinDistance = 0 }},
		{"zero area floor", func(p *Profile) { p.AreaFloor = 0 }},
		{"zero span", func(p *Profile) { p.PressureSpan = 0 }},
		{"unknown gate", func(p *Profile) { p.PressureGate = 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Blob
			tt.mutate(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("Expected ErrInvalidProfile, got %v", err)
			}
			if _, err := NewKernel(p, nil); err == nil {
				t.Error("Expected NewKernel to reject profile")
			}
		})
	}
}

func TestNewKernelCopiesProfile(t *testing.T) {
	p := Blob
	k, err := NewKernel(p, nil)
	if err != nil {
		t.Fatalf("NewKernel failed: %v", err)
	}
	p.Tension = 1
	if k.Profile.Tension != Blob.Tension {
		t.Errorf("Expected kernel profile isolated, got tension %v", k.Profile.Tension)
	}
}

func TestModeText(t *testing.T) {
	var tm TensionMode
	if err := tm.UnmarshalText([]byte("spring")); err != nil || tm != TensionSpring {
		t.Errorf("Expected spring, got %v (%v)", tm, err)
	}
	var pm PressureMode
	if err := pm.UnmarshalText([]byte("radial")); err != nil || pm != PressureRadial {
		t.Errorf("Expected radial, got %v (%v)", pm, err)
	}
	var pg PressureGate
	if err := pg.UnmarshalText([]byte("always")); err != nil || pg != PressureAlways {
		t.Errorf("Expected always, got %v (%v)", pg, err)
	}
	if err := pg.UnmarshalText([]byte("sometimes")); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("Expected ErrInvalidProfile, got %v", err)
	}

	b, _ := PressureDeficit.MarshalText()
	if string(b) != "deficit" {
		t.Errorf("Expected deficit, got %s", b)
	}
	if s := TensionMode(7).String(); s != "TensionMode(7)" {
		t.Errorf("Expected TensionMode(7), got %s", s)
	}
}
