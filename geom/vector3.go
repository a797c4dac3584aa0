package geom

import "github.com/chewxy/math32"

type Element = float32

// Vector3 is a point or direction. Rotations act on it through Rotate.
type Vector3 struct {
	X, Y, Z Element
}

func NewVector3(x, y, z Element) *Vector3 {
	return &Vector3{x, y, z}
}

func NewVector3FromArray(a [3]Element) *Vector3 {
	return &Vector3{a[0], a[1], a[2]}
}

// Sub returns v - o.
func (v *Vector3) Sub(o *Vector3) *Vector3 {
	return NewVector3(v.X-o.X, v.Y-o.Y, v.Z-o.Z)
}

func (v *Vector3) Len() Element {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ToArray stores v into the first three elements of a.
func (v *Vector3) ToArray(a []Element) {
	_ = a[2]
	a[0], a[1], a[2] = v.X, v.Y, v.Z
}
