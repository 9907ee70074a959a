package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/softbody/core"
	"github.com/lixenwraith/softbody/parameter"
)

// Direction is a held keyboard direction set
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown
)

// NudgeTarget returns a drag target offset from the centroid by half the radius per held direction
// Up is -y, matching screen coordinates
func NudgeTarget(centroid r2.Vec, radius float64, dirs Direction) r2.Vec {
	t := centroid
	step := radius / 2
	if dirs&DirLeft != 0 {
		t.X -= step
	}
	if dirs&DirRight != 0 {
		t.X += step
	}
	if dirs&DirUp != 0 {
		t.Y -= step
	}
	if dirs&DirDown != 0 {
		t.Y += step
	}
	return t
}

// Contains hit-tests p against the rest circle around the centroid
func Contains(centroid r2.Vec, radius float64, p r2.Vec) bool {
	d := r2.Sub(centroid, p)
	return d.X*d.X+d.Y*d.Y < radius*radius
}

// Circle is a decoration anchor
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Face holds eye and mouth anchors that follow the deforming body
type Face struct {
	LeftEye, RightEye, Mouth Circle
}

// FaceAnchors places eyes 1/3 of the way from the centroid toward vertices 0 and ⌊2N/3⌋,
// and the mouth 2/5 of the way toward vertex ⌊N/3⌋
func FaceAnchors(ring core.Ring, centroid r2.Vec, radius float64) Face {
	n := len(ring)
	blend := func(i int, w float64) r2.Vec {
		v := ring.At(i)
		return r2.Add(r2.Scale(w, r2.Vec{X: v.X, Y: v.Y}), r2.Scale(1-w, centroid))
	}
	eye := radius / parameter.EyeRadiusDiv
	return Face{
		LeftEye:  Circle{Center: blend(0, 1.0/3), Radius: eye},
		RightEye: Circle{Center: blend(2*n/3, 1.0/3), Radius: eye},
		Mouth:    Circle{Center: blend(n/3, 2.0/5), Radius: radius / parameter.MouthRadiusDiv},
	}
}
