package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(a, b mgl32.Vec3) bool {
	return abs(a[0]-b[0]) < 0.0001 && abs(a[1]-b[1]) < 0.0001 && abs(a[2]-b[2]) < 0.0001
}

func TestTransformPointIdentity(t *testing.T) {
	p := mgl32.Vec3{1, -2, 3}
	got := TransformPoint(mgl32.Ident4(), p)
	if got != p {
		t.Errorf("TransformPoint(I, %v) = %v", p, got)
	}
}

func TestTransformPointTranslate(t *testing.T) {
	got := TransformPoint(mgl32.Translate3D(10, 20, 30), mgl32.Vec3{1, 2, 3})
	want := mgl32.Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPointDividesByW(t *testing.T) {
	// Uniform homogeneous scale: w becomes 2, xyz stay as-is before the divide.
	m := mgl32.Ident4()
	m.SetRow(3, mgl32.Vec4{0, 0, 0, 2})

	got := TransformPoint(m, mgl32.Vec3{4, 6, 8})
	want := mgl32.Vec3{2, 3, 4}
	if !vecNear(got, want) {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPointZeroW(t *testing.T) {
	m := mgl32.Ident4()
	m.SetRow(3, mgl32.Vec4{0, 0, 0, 0})

	got := TransformPoint(m, mgl32.Vec3{1, 2, 3})
	for i := range got {
		if math.IsInf(float64(got[i]), 0) || math.IsNaN(float64(got[i])) {
			t.Fatalf("TransformPoint with w=0 produced %v", got)
		}
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	n := NormalMatrix(mgl32.Scale3D(2, 1, 1))

	tests := []struct {
		name string
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		{"x axis shrinks", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0.5, 0, 0}},
		{"y axis unchanged", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}},
		{"diagonal", mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0.5, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Mul3x1(tt.in)
			if !vecNear(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalMatrixKeepsPerpendicular(t *testing.T) {
	// Plane x + y = 0 stretched along x. Its transformed normal must stay
	// perpendicular to the transformed tangent.
	m := Compose(mgl32.HomogRotate3DZ(0.3), mgl32.Scale3D(3, 0.5, 2))
	a := NewAffine(m)

	tangent := mgl32.Vec3{1, -1, 0}
	normal := mgl32.Vec3{1, 1, 0}

	tt := a.Point(tangent).Sub(a.Point(mgl32.Vec3{}))
	nn := a.Normal(normal)
	if d := tt.Dot(nn); abs(d) > 0.0001 {
		t.Errorf("transformed normal not perpendicular: dot = %f", d)
	}

	naive := m.Mat3().Mul3x1(normal)
	if d := tt.Dot(naive); abs(d) < 0.01 {
		t.Errorf("naive transform unexpectedly perpendicular (dot = %f), test matrix too weak", d)
	}
}

func TestNormalMatrixRotation(t *testing.T) {
	r := mgl32.HomogRotate3DY(1.1)
	n := NormalMatrix(r)
	want := r.Mat3()
	for i := range n {
		if abs(n[i]-want[i]) > 0.0001 {
			t.Fatalf("normal matrix of a rotation should be the rotation: got %v, want %v", n, want)
		}
	}
}

func TestNormalMatrixIgnoresTranslation(t *testing.T) {
	n := NormalMatrix(mgl32.Translate3D(5, -3, 2))
	if n != mgl32.Ident3() {
		t.Errorf("translation should not affect normals: got %v", n)
	}
}

func TestNormalMatrixSingular(t *testing.T) {
	n := NormalMatrix(mgl32.Scale3D(0, 0, 0))
	if n != (mgl32.Mat3{}) {
		t.Errorf("singular transform: got %v, want zero matrix", n)
	}
}

func TestAffineApply(t *testing.T) {
	a := NewAffine(mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Scale3D(2, 2, 2)))

	positions := []mgl32.Vec3{{1, 1, 1}, {0, 0, 0}}
	normals := []mgl32.Vec3{{0, 1, 0}, {0, 0, 1}}
	a.Apply(positions, normals)

	if !vecNear(positions[0], mgl32.Vec3{3, 2, 2}) || !vecNear(positions[1], mgl32.Vec3{1, 0, 0}) {
		t.Errorf("positions = %v", positions)
	}
	// Uniform scale 2 gives normals scaled by 1/2, direction unchanged.
	if !vecNear(normals[0], mgl32.Vec3{0, 0.5, 0}) || !vecNear(normals[1], mgl32.Vec3{0, 0, 0.5}) {
		t.Errorf("normals = %v", normals)
	}
}

func TestComposeOrder(t *testing.T) {
	m := Compose(mgl32.Translate3D(0, 4, 0), mgl32.Scale3D(2, 2, 2))
	got := TransformPoint(m, mgl32.Vec3{1, 1, 1})
	want := mgl32.Vec3{2, 6, 2}
	if !vecNear(got, want) {
		t.Errorf("Compose(T, S): got %v, want %v", got, want)
	}

	if Compose() != mgl32.Ident4() {
		t.Error("Compose() should be identity")
	}
}

func TestIsAffine(t *testing.T) {
	if !IsAffine(mgl32.Translate3D(1, 2, 3)) {
		t.Error("translation should be affine")
	}
	if IsAffine(mgl32.Perspective(1, 1, 0.1, 100)) {
		t.Error("perspective should not be affine")
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-math.Pi) > 0.0001 {
		t.Errorf("Radians(180) = %f", got)
	}
}
