package geom

// Vector4 is a plain 4-component value. It satisfies Tuple4, so it can be
// used as a quaternion operand or result without conversion.
type Vector4 struct {
	X Element
	Y Element
	Z Element
	W Element
}

func NewVector4(x, y, z, w float32) *Vector4 {
	return &Vector4{X: x, Y: y, Z: z, W: w}
}

func (v *Vector4) V0() Element { return v.X }
func (v *Vector4) V1() Element { return v.Y }
func (v *Vector4) V2() Element { return v.Z }
func (v *Vector4) V3() Element { return v.W }

func (v *Vector4) Set(x, y, z, w Element) {
	v.X, v.Y, v.Z, v.W = x, y, z, w
}

func (v *Vector4) ToArray(array []Element) {
	array[0] = v.X
	array[1] = v.Y
	array[2] = v.Z
	array[3] = v.W
}
