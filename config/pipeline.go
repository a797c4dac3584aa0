package config

import (
	"fmt"

	"github.com/binzume/quatconv/geom"
	"github.com/chewxy/math32"
)

const (
	OpNormalize = "normalize"
	OpConjugate = "conjugate"
	OpInverse   = "inverse"
	OpMul       = "mul"  // q ⋅ r
	OpRMul      = "rmul" // r ⋅ q
	OpMirror    = "mirror"
)

// Step is one pipeline operation.
type Step struct {
	Op string `yaml:"op"`

	// mul, rmul
	Rotation *geom.Quaternion `yaml:"rotation,omitempty"`
	Axis     []float32        `yaml:"axis,omitempty"`
	Angle    float32          `yaml:"angle,omitempty"`
	Degrees  bool             `yaml:"degrees,omitempty"`
	// Euler angles, applied in Order (xyz, yxz, zxy or zyx; default xyz).
	Euler []float32 `yaml:"euler,omitempty"`
	Order string    `yaml:"order,omitempty"`

	// mirror: x, y or z
	Flip string `yaml:"flip,omitempty"`
}

// Pipeline is an ordered list of steps applied to every rotation.
type Pipeline []Step

// Compile validates p and returns a function applying all steps in place.
func (p Pipeline) Compile() (func(q geom.Tuple4), error) {
	var fns []func(q geom.Tuple4)
	for i := range p {
		f, err := p[i].compile()
		if err != nil {
			return nil, fmt.Errorf("config: step %d: %w", i, err)
		}
		fns = append(fns, f)
	}
	return func(q geom.Tuple4) {
		for _, f := range fns {
			f(q)
		}
	}, nil
}

func (s *Step) compile() (func(q geom.Tuple4), error) {
	switch s.Op {
	case OpNormalize:
		return func(q geom.Tuple4) { geom.Nrm(q, q) }, nil
	case OpConjugate:
		return func(q geom.Tuple4) { geom.Conj(q, q) }, nil
	case OpInverse:
		return func(q geom.Tuple4) { geom.Inv(q, q) }, nil
	case OpMul, OpRMul:
		r, err := s.rotation()
		if err != nil {
			return nil, err
		}
		if s.Op == OpMul {
			return func(q geom.Tuple4) { geom.Mul(q, r, q) }, nil
		}
		return func(q geom.Tuple4) { geom.Mul(r, q, q) }, nil
	case OpMirror:
		axis := map[string]int{"x": 0, "y": 1, "z": 2}
		a, ok := axis[s.Flip]
		if !ok {
			return nil, fmt.Errorf("mirror needs flip x, y or z, got %q", s.Flip)
		}
		return func(q geom.Tuple4) { geom.Mirror(q, a, q) }, nil
	}
	return nil, fmt.Errorf("unknown op %q", s.Op)
}

var rotationOrders = map[string]geom.RotationOrder{
	"":    geom.RotationOrderXYZ,
	"xyz": geom.RotationOrderXYZ,
	"yxz": geom.RotationOrderYXZ,
	"zxy": geom.RotationOrderZXY,
	"zyx": geom.RotationOrderZYX,
}

// rotation returns the rotation described by s: the explicit quaternion,
// the Euler angles or the axis-angle pair.
func (s *Step) rotation() (geom.Quaternion, error) {
	var q geom.Quaternion
	if s.Rotation != nil {
		return *s.Rotation, nil
	}
	unit := float32(1)
	if s.Degrees {
		unit = math32.Pi / 180
	}
	if s.Euler != nil {
		order, ok := rotationOrders[s.Order]
		if len(s.Euler) != 3 || !ok {
			return q, fmt.Errorf("%s needs euler [x, y, z] and order xyz, yxz, zxy or zyx", s.Op)
		}
		geom.NewEuler(s.Euler[0]*unit, s.Euler[1]*unit, s.Euler[2]*unit, order).ToQuaternion(&q)
		return q, nil
	}
	if len(s.Axis) != 3 {
		return q, fmt.Errorf("%s needs rotation, euler or axis [x, y, z]", s.Op)
	}
	q.SetFromAxisAngle(s.Axis[0], s.Axis[1], s.Axis[2], s.Angle*unit)
	return q, nil
}
