package geom

import "github.com/chewxy/math32"

type RotationOrder int

const (
	RotationOrderXYZ RotationOrder = iota
	RotationOrderYXZ
	RotationOrderZXY
	RotationOrderZYX
)

type EulerAngles struct {
	Vector3
	Order RotationOrder
}

func NewEuler(x, y, z float32, order RotationOrder) *EulerAngles {
	return &EulerAngles{Vector3: Vector3{x, y, z}, Order: order}
}

// ToQuaternion writes the rotation to out. XYZ order means q = qx ⋅ qy ⋅ qz.
func (v *EulerAngles) ToQuaternion(out Tuple4Writer) Tuple4Writer {
	cx, sx := math32.Cos(v.X/2), math32.Sin(v.X/2)
	cy, sy := math32.Cos(v.Y/2), math32.Sin(v.Y/2)
	cz, sz := math32.Cos(v.Z/2), math32.Sin(v.Z/2)

	switch v.Order {
	case RotationOrderXYZ:
		out.Set(
			sx*cy*cz+cx*sy*sz,
			cx*sy*cz-sx*cy*sz,
			cx*cy*sz+sx*sy*cz,
			cx*cy*cz-sx*sy*sz)
	case RotationOrderYXZ:
		out.Set(
			sx*cy*cz+cx*sy*sz,
			cx*sy*cz-sx*cy*sz,
			cx*cy*sz-sx*sy*cz,
			cx*cy*cz+sx*sy*sz)
	case RotationOrderZXY:
		out.Set(
			sx*cy*cz-cx*sy*sz,
			cx*sy*cz+sx*cy*sz,
			cx*cy*sz+sx*sy*cz,
			cx*cy*cz-sx*sy*sz)
	case RotationOrderZYX:
		out.Set(
			sx*cy*cz-cx*sy*sz,
			cx*sy*cz+sx*cy*sz,
			cx*cy*sz-sx*sy*cz,
			cx*cy*cz+sx*sy*sz)
	default:
		out.Set(0, 0, 0, 1)
	}
	return out
}
