package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quaternion is a quaternion of float32 stored as x, y, z, w.
// (x, y, z) is the vector part and w the scalar part.
type Quaternion [4]Element

// QuaternionView is the read-only quaternion capability.
// Methods suffixed with N return a new value; methods suffixed with T write
// into out and return it.
type QuaternionView interface {
	Tuple4Reader
	X() Element
	Y() Element
	Z() Element
	W() Element
	LenSq() Element
	Len() Element
	LenRc() Element
	Dot(other Tuple4Reader) Element
	ConjN() Quaternion
	ConjT(out Tuple4Writer) Tuple4Writer
	InvN() Quaternion
	InvT(out Tuple4Writer) Tuple4Writer
	NrmN() Quaternion
	NrmT(out Tuple4Writer) Tuple4Writer
}

// QuaternionMutator adds in-place operations to QuaternionView.
// Every mutator returns its receiver.
type QuaternionMutator interface {
	QuaternionView
	Tuple4Writer
	SetX(v Element) *Quaternion
	SetY(v Element) *Quaternion
	SetZ(v Element) *Quaternion
	SetW(v Element) *Quaternion
	SetV0(v Element) *Quaternion
	SetV1(v Element) *Quaternion
	SetV2(v Element) *Quaternion
	SetV3(v Element) *Quaternion
	SetFromAxisAngle(ax, ay, az, angle Element) *Quaternion
	Conjugate() *Quaternion
	Inverse() *Quaternion
	Normalize() *Quaternion
	Mul(other Tuple4Reader) *Quaternion
	MulN(other Tuple4Reader) Quaternion
	RMul(other Tuple4Reader) *Quaternion
	RMulN(other Tuple4Reader) Quaternion
}

var _ QuaternionMutator = (*Quaternion)(nil)

func NewQuaternion(x, y, z, w float32) *Quaternion {
	return &Quaternion{x, y, z, w}
}

func NewQuaternionFromArray(arr [4]Element) *Quaternion {
	q := Quaternion(arr)
	return &q
}

// NewQuaternionFromAxisAngle returns the rotation of angle radians around (ax, ay, az).
func NewQuaternionFromAxisAngle(ax, ay, az, angle Element) *Quaternion {
	return FromAxisAngle(&Vector3{X: ax, Y: ay, Z: az}, angle, &Quaternion{})
}

// Identity returns (0, 0, 0, 1).
func Identity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

func (q Quaternion) X() Element  { return q[0] }
func (q Quaternion) Y() Element  { return q[1] }
func (q Quaternion) Z() Element  { return q[2] }
func (q Quaternion) W() Element  { return q[3] }
func (q Quaternion) V0() Element { return q[0] }
func (q Quaternion) V1() Element { return q[1] }
func (q Quaternion) V2() Element { return q[2] }
func (q Quaternion) V3() Element { return q[3] }

func (q Quaternion) LenSq() Element { return LenSq(q) }
func (q Quaternion) Len() Element   { return Len(q) }
func (q Quaternion) LenRc() Element { return LenRc(q) }

func (q Quaternion) Dot(other Tuple4Reader) Element { return Dot(q, other) }

func (q Quaternion) ConjN() (r Quaternion) {
	Conj(q, &r)
	return
}

func (q Quaternion) ConjT(out Tuple4Writer) Tuple4Writer { return Conj(q, out) }

func (q Quaternion) InvN() (r Quaternion) {
	Inv(q, &r)
	return
}

func (q Quaternion) InvT(out Tuple4Writer) Tuple4Writer { return Inv(q, out) }

func (q Quaternion) NrmN() (r Quaternion) {
	Nrm(q, &r)
	return
}

func (q Quaternion) NrmT(out Tuple4Writer) Tuple4Writer { return Nrm(q, out) }

// ApplyTo returns v rotated by q.
func (q Quaternion) ApplyTo(v *Vector3) *Vector3 {
	return Rotate(q, v)
}

// ApproxEqual reports whether every component of q is within eps of other.
func (q Quaternion) ApproxEqual(other Tuple4Reader, eps Element) bool {
	x, y, z, w := load(other)
	return math32.Abs(q[0]-x) <= eps && math32.Abs(q[1]-y) <= eps &&
		math32.Abs(q[2]-z) <= eps && math32.Abs(q[3]-w) <= eps
}

func (q Quaternion) IsIdentity() bool {
	return q == Identity()
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q[0], q[1], q[2], q[3])
}

func (q *Quaternion) Set(x, y, z, w Element) {
	q[0], q[1], q[2], q[3] = x, y, z, w
}

func (q *Quaternion) SetX(v Element) *Quaternion { q[0] = v; return q }
func (q *Quaternion) SetY(v Element) *Quaternion { q[1] = v; return q }
func (q *Quaternion) SetZ(v Element) *Quaternion { q[2] = v; return q }
func (q *Quaternion) SetW(v Element) *Quaternion { q[3] = v; return q }

func (q *Quaternion) SetV0(v Element) *Quaternion { return q.SetX(v) }
func (q *Quaternion) SetV1(v Element) *Quaternion { return q.SetY(v) }
func (q *Quaternion) SetV2(v Element) *Quaternion { return q.SetZ(v) }
func (q *Quaternion) SetV3(v Element) *Quaternion { return q.SetW(v) }

// SetFromAxisAngle sets q to the rotation of angle radians around (ax, ay, az),
// counterclockwise when looking down the axis (right-handed).
func (q *Quaternion) SetFromAxisAngle(ax, ay, az, angle Element) *Quaternion {
	return FromAxisAngle(&Vector3{X: ax, Y: ay, Z: az}, angle, q)
}

func (q *Quaternion) Conjugate() *Quaternion { return Conj(q, q) }
func (q *Quaternion) Inverse() *Quaternion   { return Inv(q, q) }
func (q *Quaternion) Normalize() *Quaternion { return Nrm(q, q) }

// Mul sets q to q ⋅ other.
func (q *Quaternion) Mul(other Tuple4Reader) *Quaternion { return Mul(q, other, q) }

// MulN returns q ⋅ other.
func (q Quaternion) MulN(other Tuple4Reader) (r Quaternion) {
	Mul(q, other, &r)
	return
}

// RMul sets q to other ⋅ q.
func (q *Quaternion) RMul(other Tuple4Reader) *Quaternion { return Mul(other, q, q) }

// RMulN returns other ⋅ q.
func (q Quaternion) RMulN(other Tuple4Reader) (r Quaternion) {
	Mul(other, q, &r)
	return
}

// UnmarshalYAML accepts either [x, y, z, w] or a {x, y, z, w} mapping.
func (q *Quaternion) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var seq []Element
	if err := unmarshal(&seq); err == nil {
		if len(seq) != 4 {
			return fmt.Errorf("geom: quaternion needs 4 components, got %d", len(seq))
		}
		copy(q[:], seq)
		return nil
	}
	var m struct {
		X Element `yaml:"x"`
		Y Element `yaml:"y"`
		Z Element `yaml:"z"`
		W Element `yaml:"w"`
	}
	if err := unmarshal(&m); err != nil {
		return err
	}
	q.Set(m.X, m.Y, m.Z, m.W)
	return nil
}
