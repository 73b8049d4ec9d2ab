// Package debug provides debug visualization and capture utilities.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/mesh"
	lpmath "github.com/Faultbox/launchpad/pkg/math"
)

// LineVertex is one endpoint of a colored debug line.
type LineVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// LineVertexFloats is the number of floats per packed LineVertex.
const LineVertexFloats = 6

// BoxLineVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxLineVertexCount = 24

// boxEdges indexes the 8 corners produced by corners().
var boxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	// Top face
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	// Verticals
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func corners(b mesh.Bounds) [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := range out {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[2] = b.Max[2]
		}
		if i&4 != 0 {
			c[1] = b.Max[1]
		}
		out[i] = c
	}
	return out
}

// BoxLines returns the 12 edges of a bounding box carried through model,
// so a local-space box follows its mesh.
func BoxLines(b mesh.Bounds, model mgl32.Mat4, color mgl32.Vec3) []LineVertex {
	c := corners(b)
	for i := range c {
		c[i] = lpmath.TransformPoint(model, c[i])
	}

	out := make([]LineVertex, 0, BoxLineVertexCount)
	for _, e := range boxEdges {
		out = append(out,
			LineVertex{Position: c[e[0]], Color: color},
			LineVertex{Position: c[e[1]], Color: color},
		)
	}
	return out
}

// GridLines returns a square reference grid on the XZ plane at height y,
// centered on the origin with cells of the given size.
func GridLines(halfCells int, cell, y float32, color mgl32.Vec3) []LineVertex {
	if halfCells < 1 || cell <= 0 {
		return nil
	}
	extent := float32(halfCells) * cell

	out := make([]LineVertex, 0, (2*halfCells+1)*4)
	for i := -halfCells; i <= halfCells; i++ {
		p := float32(i) * cell
		out = append(out,
			LineVertex{Position: mgl32.Vec3{p, y, -extent}, Color: color},
			LineVertex{Position: mgl32.Vec3{p, y, extent}, Color: color},
			LineVertex{Position: mgl32.Vec3{-extent, y, p}, Color: color},
			LineVertex{Position: mgl32.Vec3{extent, y, p}, Color: color},
		)
	}
	return out
}

// AxisLines returns red, green and blue segments along +X, +Y and +Z.
func AxisLines(length float32) []LineVertex {
	return []LineVertex{
		{Color: mgl32.Vec3{1, 0, 0}}, {Position: mgl32.Vec3{length, 0, 0}, Color: mgl32.Vec3{1, 0, 0}},
		{Color: mgl32.Vec3{0, 1, 0}}, {Position: mgl32.Vec3{0, length, 0}, Color: mgl32.Vec3{0, 1, 0}},
		{Color: mgl32.Vec3{0, 0, 1}}, {Position: mgl32.Vec3{0, 0, length}, Color: mgl32.Vec3{0, 0, 1}},
	}
}

// PackLines flattens vertices as [x y z r g b] for a GL buffer.
func PackLines(vs []LineVertex) []float32 {
	out := make([]float32, 0, len(vs)*LineVertexFloats)
	for _, v := range vs {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.Color[0], v.Color[1], v.Color[2])
	}
	return out
}
