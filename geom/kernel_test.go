package geom

import (
	"testing"

	"github.com/chewxy/math32"
)

const eps = 0.000001

var samples = []Quaternion{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 0, 1},
	{1, 2, 3, 4},
	{-0.5, 0.25, 2, -1},
	{0.001, -3, 0.5, 0.75},
}

func TestUnitX(t *testing.T) {
	q := Quaternion{1, 0, 0, 0}
	if l := LenSq(q); l != 1 {
		t.Fatalf("LenSq\nhave %v\nwant 1", l)
	}
	if l := Len(q); l != 1 {
		t.Fatalf("Len\nhave %v\nwant 1", l)
	}
	var r Quaternion
	if Conj(q, &r); r != (Quaternion{-1, 0, 0, 0}) {
		t.Fatalf("Conj\nhave %v\nwant (-1, 0, 0, 0)", r)
	}
	if Inv(q, &r); r != (Quaternion{-1, 0, 0, 0}) {
		t.Fatalf("Inv\nhave %v\nwant (-1, 0, 0, 0)", r)
	}
	if Nrm(q, &r); r != q {
		t.Fatalf("Nrm\nhave %v\nwant %v", r, q)
	}
}

func TestMul(t *testing.T) {
	var r Quaternion
	i := Quaternion{1, 0, 0, 0}
	j := Quaternion{0, 1, 0, 0}

	if Mul(i, j, &r); r != (Quaternion{0, 0, 1, 0}) {
		t.Fatalf("Mul(i, j)\nhave %v\nwant (0, 0, 1, 0)", r)
	}
	if Mul(j, i, &r); r != (Quaternion{0, 0, -1, 0}) {
		t.Fatalf("Mul(j, i)\nhave %v\nwant (0, 0, -1, 0)", r)
	}

	q := Quaternion{1, 0, 0, 3}
	p := Quaternion{0, 1, 0, 3}
	if Mul(q, p, &r); r != (Quaternion{3, 3, 1, 9}) {
		t.Fatalf("Mul\nhave %v\nwant (3, 3, 1, 9)", r)
	}
	if Mul(p, q, &r); r != (Quaternion{3, 3, -1, 9}) {
		t.Fatalf("Mul\nhave %v\nwant (3, 3, -1, 9)", r)
	}
	if Mul(&q, &q, &q); q != (Quaternion{6, 0, 0, 8}) {
		t.Fatalf("Mul (aliased)\nhave %v\nwant (6, 0, 0, 8)", q)
	}
}

func TestMulNonCommutative(t *testing.T) {
	a := NewQuaternionFromAxisAngle(1, 0, 0, math32.Pi/2)
	b := NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/2)
	var ab, ba Quaternion
	Mul(a, b, &ab)
	Mul(b, a, &ba)
	if ab.ApproxEqual(ba, eps) {
		t.Errorf("a*b == b*a: %v %v", ab, ba)
	}
}

func TestIdentity(t *testing.T) {
	id := Identity()
	for _, q := range samples {
		var r Quaternion
		if Mul(q, id, &r); r != q {
			t.Errorf("q*1 != q: %v %v", r, q)
		}
		if Mul(id, q, &r); r != q {
			t.Errorf("1*q != q: %v %v", r, q)
		}
	}
}

func TestZero(t *testing.T) {
	var q, r Quaternion
	if l := Len(q); l != 0 {
		t.Fatalf("Len\nhave %v\nwant 0", l)
	}
	if l := LenRc(q); !math32.IsInf(l, 1) {
		t.Fatalf("LenRc\nhave %v\nwant +Inf", l)
	}
	Nrm(q, &r)
	for i, v := range r {
		if !math32.IsNaN(v) {
			t.Errorf("Nrm[%d]\nhave %v\nwant NaN", i, v)
		}
	}
	if l := Len(Quaternion{1e-7, 0, 0, 0}); l != 0 {
		t.Errorf("Len within tolerance\nhave %v\nwant 0", l)
	}
}

func TestConjInvolution(t *testing.T) {
	for _, q := range samples {
		var r Quaternion
		if Conj(Conj(q, &r), &r); r != q {
			t.Errorf("conj(conj(q)) != q: %v %v", r, q)
		}
	}
}

func TestLen(t *testing.T) {
	for _, q := range samples {
		if l := Len(q); l <= 0 {
			t.Errorf("Len(%v) = %v", q, l)
		}
		if d := math32.Abs(Len(q)*LenRc(q) - 1); d > eps {
			t.Errorf("Len * LenRc != 1: %v", q)
		}
	}
	if l := Len(Quaternion{1, 2, 2, 4}); l != 5 {
		t.Errorf("Len\nhave %v\nwant 5", l)
	}
}

func TestInverse(t *testing.T) {
	for _, q := range samples {
		var inv, r Quaternion
		Mul(q, Inv(q, &inv), &r)
		if !r.ApproxEqual(Identity(), eps) {
			t.Errorf("q*inv(q) != 1: %v %v", q, r)
		}
		Mul(&inv, q, &r)
		if !r.ApproxEqual(Identity(), eps) {
			t.Errorf("inv(q)*q != 1: %v %v", q, r)
		}
	}
}

func TestNormalize(t *testing.T) {
	for _, q := range samples {
		var n, n2 Quaternion
		Nrm(q, &n)
		if d := math32.Abs(Len(n) - 1); d > eps {
			t.Errorf("Len(nrm(%v)) = %v", q, Len(n))
		}
		if Nrm(n, &n2); !n2.ApproxEqual(n, eps) {
			t.Errorf("nrm(nrm(q)) != nrm(q): %v %v", n2, n)
		}
		// for unit quaternions the inverse is the conjugate
		var inv, conj Quaternion
		Inv(n, &inv)
		Conj(n, &conj)
		if !inv.ApproxEqual(conj, eps) {
			t.Errorf("inv != conj for unit q: %v %v", inv, conj)
		}
	}
}

func TestDot(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if Dot(a, b) != Dot(b, a) {
				t.Errorf("Dot not commutative: %v %v", a, b)
			}
		}
	}
	if d := Dot(Quaternion{1, 2, 3, 4}, Quaternion{-1, 0, 2, 0.5}); d != 7 {
		t.Errorf("Dot\nhave %v\nwant 7", d)
	}
}

func TestSinks(t *testing.T) {
	q := Quaternion{1, 2, 3, 4}
	want := Quaternion{-1, -2, -3, 4}

	buf := make([]float32, 6)
	if Conj(q, Buffer(buf[2:])); Quaternion(buf[2:6]) != want || buf[0] != 0 || buf[1] != 0 {
		t.Errorf("Buffer sink\nhave %v\nwant [0 0 -1 -2 -3 4]", buf)
	}

	v := Conj(q, &Vector4{})
	if *v != (Vector4{-1, -2, -3, 4}) {
		t.Errorf("Vector4 sink\nhave %v\nwant %v", v, want)
	}

	f := Conj(q, Make(func(x, y, z, w Element) [4]float64 {
		return [4]float64{float64(x), float64(y), float64(z), float64(w)}
	}))
	if f.Value != [4]float64{-1, -2, -3, 4} {
		t.Errorf("Factory sink\nhave %v\nwant %v", f.Value, want)
	}
}

func TestSources(t *testing.T) {
	want := Quaternion{1, 2, 3, 4}.MulN(Quaternion{0, 1, 0, 1})
	var r Quaternion
	if Mul(Buffer([]float32{1, 2, 3, 4}), &Vector4{0, 1, 0, 1}, &r); r != want {
		t.Errorf("Buffer * Vector4\nhave %v\nwant %v", r, want)
	}
	if Mul(NewQuaternion(1, 2, 3, 4), Quaternion{0, 1, 0, 1}, &r); r != want {
		t.Errorf("*Quaternion * Quaternion\nhave %v\nwant %v", r, want)
	}
}

func TestRotate(t *testing.T) {
	const eps = 0.00001
	q := NewQuaternionFromAxisAngle(0, 0, 1, math32.Pi/2)
	v := Rotate(q, NewVector3(1, 0, 0))
	if v.Sub(NewVector3(0, 1, 0)).Len() > eps {
		t.Errorf("Rotate\nhave %v\nwant {0 1 0}", v)
	}
	m := NewRotationMatrix4FromQuaternion(q)
	for _, p := range []*Vector3{{1, 2, 3}, {-1, 0, 0.5}, {0, 0, 1}} {
		a := q.ApplyTo(p)
		b := m.ApplyTo(p)
		if a.Sub(b).Len() > eps {
			t.Errorf("matrix and quaternion disagree: %v %v", a, b)
		}
	}
}

func TestMirror(t *testing.T) {
	const eps = 0.00001
	q := NewQuaternionFromAxisAngle(1, 1, 0, 0.7)
	var m Quaternion
	Mirror(q, 2, &m)
	if m != (Quaternion{-q[0], -q[1], q[2], q[3]}) {
		t.Fatal("Mirror", m)
	}
	// mirrored rotation of a mirrored point is the mirrored rotated point
	p := NewVector3(0.3, -2, 1)
	a := q.ApplyTo(p)
	b := m.ApplyTo(NewVector3(p.X, p.Y, -p.Z))
	if b.Sub(NewVector3(a.X, a.Y, -a.Z)).Len() > eps {
		t.Error("Mirror rotation", a, b)
	}
}

func TestMatrix4Mul(t *testing.T) {
	const eps = 0.00001
	q := NewQuaternionFromAxisAngle(0, 1, 0, math32.Pi/2)
	m := NewTranslateMatrix4(1, 2, 3).Mul(NewScaleMatrix4(2, 2, 2)).Mul(NewRotationMatrix4FromQuaternion(q))
	// (1,0,0) -> rotate (0,0,-1) -> scale (0,0,-2) -> translate (1,2,1)
	v := m.ApplyTo(NewVector3(1, 0, 0))
	if v.Sub(NewVector3(1, 2, 1)).Len() > eps {
		t.Errorf("Matrix4.Mul\nhave %v\nwant {1 2 1}", v)
	}
	if *NewMatrix4().Mul(m) != *m {
		t.Error("identity * m != m")
	}
}
