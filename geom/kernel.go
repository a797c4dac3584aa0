package geom

import "github.com/chewxy/math32"

// ZeroTolerance is the squared length at or below which Len reports 0.
// Non-zero quaternions shorter than about 1e-6 therefore also have Len 0.
const ZeroTolerance Element = 1e-12

// The functions below read every operand component before writing to out,
// so out may be one of the operands.

// LenSq returns x²+y²+z²+w².
func LenSq(q Tuple4Reader) Element {
	x, y, z, w := load(q)
	return x*x + y*y + z*z + w*w
}

// Len returns the length of q, or 0 when LenSq(q) is within ZeroTolerance.
func Len(q Tuple4Reader) Element {
	l := LenSq(q)
	if l <= ZeroTolerance {
		return 0
	}
	return math32.Sqrt(l)
}

// LenRc returns 1/Len(q). It is not guarded: a zero q gives +Inf.
func LenRc(q Tuple4Reader) Element {
	return 1 / math32.Sqrt(LenSq(q))
}

// Dot returns a ⋅ b.
func Dot(a, b Tuple4Reader) Element {
	x1, y1, z1, w1 := load(a)
	x2, y2, z2, w2 := load(b)
	return x1*x2 + y1*y2 + z1*z2 + w1*w2
}

// Conj writes (-x, -y, -z, w) to out and returns out.
func Conj[S Tuple4Writer](q Tuple4Reader, out S) S {
	x, y, z, w := load(q)
	out.Set(-x, -y, -z, w)
	return out
}

// Inv writes conj(q)/LenSq(q) to out and returns out.
func Inv[S Tuple4Writer](q Tuple4Reader, out S) S {
	x, y, z, w := load(q)
	l := x*x + y*y + z*z + w*w
	out.Set(-x/l, -y/l, -z/l, w/l)
	return out
}

// Nrm writes q scaled by LenRc(q) to out and returns out.
// A zero q produces NaN components.
func Nrm[S Tuple4Writer](q Tuple4Reader, out S) S {
	x, y, z, w := load(q)
	r := 1 / math32.Sqrt(x*x+y*y+z*z+w*w)
	out.Set(x*r, y*r, z*r, w*r)
	return out
}

// Mul writes the Hamilton product l ⋅ r to out and returns out.
func Mul[S Tuple4Writer](l, r Tuple4Reader, out S) S {
	x1, y1, z1, w1 := load(l)
	x2, y2, z2, w2 := load(r)
	out.Set(
		w1*x2+w2*x1+(y1*z2-z1*y2),
		w1*y2+w2*y1+(z1*x2-x1*z2),
		w1*z2+w2*z1+(x1*y2-y1*x2),
		w1*w2-(x1*x2+y1*y2+z1*z2),
	)
	return out
}

// FromAxisAngle writes the rotation of angle radians around axis to out.
// The axis does not need to be normalized; a zero axis gives the identity.
func FromAxisAngle[S Tuple4Writer](axis *Vector3, angle Element, out S) S {
	l := axis.Len()
	if l == 0 {
		out.Set(0, 0, 0, 1)
		return out
	}
	s := math32.Sin(angle/2) / l
	out.Set(axis.X*s, axis.Y*s, axis.Z*s, math32.Cos(angle/2))
	return out
}

// Rotate returns v rotated by the unit quaternion q (q ⋅ v ⋅ q*).
func Rotate(q Tuple4Reader, v *Vector3) *Vector3 {
	p := Quaternion{v.X, v.Y, v.Z, 0}
	var c Quaternion
	Mul(Mul(q, &p, &p), Conj(q, &c), &p)
	return &Vector3{X: p[0], Y: p[1], Z: p[2]}
}

// Mirror writes the rotation q as seen in a coordinate system whose axis
// (0: x, 1: y, 2: z) is flipped. The other two vector components are negated.
func Mirror[S Tuple4Writer](q Tuple4Reader, axis int, out S) S {
	v := [4]Element{q.V0(), q.V1(), q.V2(), q.V3()}
	for i := 0; i < 3; i++ {
		if i != axis {
			v[i] = -v[i]
		}
	}
	out.Set(v[0], v[1], v[2], v[3])
	return out
}
