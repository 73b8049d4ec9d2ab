// Package math provides the transform helpers shared by mesh generation,
// the loaders and the renderer. Vector and matrix types come from mgl32;
// this package only adds the rules for carrying positions and normals
// through a model transform.
package math

import "github.com/go-gl/mathgl/mgl32"

// TransformPoint transforms p by m as a homogeneous point (w=1) and divides
// the result by its w component. The divide happens even for affine
// matrices, where w stays 1. A w of exactly zero returns the undivided xyz.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	w := v[3]
	if w == 0 {
		return v.Vec3()
	}
	return mgl32.Vec3{v[0] / w, v[1] / w, v[2] / w}
}

// NormalMatrix returns transpose(inverse(L)) where L is the upper-left 3x3
// of m. A singular L yields the zero matrix.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}

// Affine pairs a model transform with its precomputed normal matrix.
type Affine struct {
	M mgl32.Mat4
	N mgl32.Mat3
}

// NewAffine computes the normal matrix for m once.
func NewAffine(m mgl32.Mat4) Affine {
	return Affine{M: m, N: NormalMatrix(m)}
}

// Point transforms a position.
func (a Affine) Point(p mgl32.Vec3) mgl32.Vec3 {
	return TransformPoint(a.M, p)
}

// Normal transforms a normal. The result is not renormalized.
func (a Affine) Normal(n mgl32.Vec3) mgl32.Vec3 {
	return a.N.Mul3x1(n)
}

// Apply transforms positions and normals in place.
func (a Affine) Apply(positions, normals []mgl32.Vec3) {
	for i, p := range positions {
		positions[i] = a.Point(p)
	}
	for i, n := range normals {
		normals[i] = a.Normal(n)
	}
}

// Compose multiplies matrices left to right, so Compose(R, S, T) applies T
// first and R last, matching how the product is written.
func Compose(ms ...mgl32.Mat4) mgl32.Mat4 {
	out := mgl32.Ident4()
	for _, m := range ms {
		out = out.Mul4(m)
	}
	return out
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return mgl32.DegToRad(deg)
}

// IsAffine reports whether the bottom row of m is (0, 0, 0, 1).
func IsAffine(m mgl32.Mat4) bool {
	return m.Row(3) == mgl32.Vec4{0, 0, 0, 1}
}
