// Package mesh builds non-indexed triangle meshes: procedural primitives,
// concatenation of independently transformed parts, and the flat record
// that loaders and the renderer exchange.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute stride of the interleaved layout, in floats.
const (
	PositionSize = 3
	ColorSize    = 3
	NormalSize   = 3
	TexCoordSize = 2
	Stride       = PositionSize + ColorSize + NormalSize + TexCoordSize
)

var (
	ErrAttributeMismatch = errors.New("mesh: positions, colors and normals differ in length")
	ErrTexCoordMismatch  = errors.New("mesh: texcoords must be empty or match positions")
	ErrPartialTriangle   = errors.New("mesh: vertex count is not a multiple of 3")
)

// Data is a flat triangle list stored as parallel attribute arrays. Every
// three consecutive vertices form one triangle.
type Data struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2 // empty for procedural meshes
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the box midpoint.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Len returns the number of vertices.
func (d Data) Len() int {
	return len(d.Positions)
}

// TriangleCount returns the number of complete triangles.
func (d Data) TriangleCount() int {
	return len(d.Positions) / 3
}

// HasTexCoords reports whether per-vertex texture coordinates are present.
func (d Data) HasTexCoords() bool {
	return len(d.TexCoords) > 0
}

// Validate checks the parallel-array invariants and returns the first
// violation found.
func (d Data) Validate() error {
	n := len(d.Positions)
	if len(d.Colors) != n || len(d.Normals) != n {
		return fmt.Errorf("%w: %d positions, %d colors, %d normals",
			ErrAttributeMismatch, n, len(d.Colors), len(d.Normals))
	}
	if len(d.TexCoords) != 0 && len(d.TexCoords) != n {
		return fmt.Errorf("%w: %d texcoords for %d positions", ErrTexCoordMismatch, len(d.TexCoords), n)
	}
	if n%3 != 0 {
		return fmt.Errorf("%w: %d vertices", ErrPartialTriangle, n)
	}
	return nil
}

// Bounds computes the axis-aligned bounding box of all positions. An empty
// mesh returns a zero box.
func (d Data) Bounds() Bounds {
	if len(d.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: d.Positions[0], Max: d.Positions[0]}
	for _, p := range d.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < b.Min[k] {
				b.Min[k] = p[k]
			}
			if p[k] > b.Max[k] {
				b.Max[k] = p[k]
			}
		}
	}
	return b
}

// Interleave packs the record as position, color, normal, texcoord per
// vertex (Stride floats each). Missing texcoords are written as zero.
func (d Data) Interleave() []float32 {
	out := make([]float32, 0, len(d.Positions)*Stride)
	hasUV := d.HasTexCoords()
	for i, p := range d.Positions {
		c, n := d.Colors[i], d.Normals[i]
		out = append(out, p[0], p[1], p[2], c[0], c[1], c[2], n[0], n[1], n[2])
		if hasUV {
			out = append(out, d.TexCoords[i][0], d.TexCoords[i][1])
		} else {
			out = append(out, 0, 0)
		}
	}
	return out
}

// Clone returns a deep copy.
func (d Data) Clone() Data {
	return Data{
		Positions: append([]mgl32.Vec3(nil), d.Positions...),
		Colors:    append([]mgl32.Vec3(nil), d.Colors...),
		Normals:   append([]mgl32.Vec3(nil), d.Normals...),
		TexCoords: append([]mgl32.Vec2(nil), d.TexCoords...),
	}
}
