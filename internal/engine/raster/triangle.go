package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ScreenVertex is a vertex after projection: X and Y in pixels, Z in NDC depth.
type ScreenVertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

// RasterizeTriangle fills one triangle with interpolated vertex color scaled
// by shade. Both windings are drawn. Pixels pass the depth test when nearer
// (smaller Z) than what is stored.
func RasterizeTriangle(fb *FrameBuffer, v [3]ScreenVertex, shade float32) {
	x0, y0 := v[0].Pos.X(), v[0].Pos.Y()
	x1, y1 := v[1].Pos.X(), v[1].Pos.Y()
	x2, y2 := v[2].Pos.X(), v[2].Pos.Y()

	area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if area > -1e-8 && area < 1e-8 {
		return
	}
	invArea := 1 / area

	minX := clampInt(int(math.Floor(float64(min(x0, x1, x2)))), 0, fb.Width-1)
	maxX := clampInt(int(math.Ceil(float64(max(x0, x1, x2)))), 0, fb.Width-1)
	minY := clampInt(int(math.Floor(float64(min(y0, y1, y2)))), 0, fb.Height-1)
	maxY := clampInt(int(math.Ceil(float64(max(y0, y1, y2)))), 0, fb.Height-1)

	for py := minY; py <= maxY; py++ {
		cy := float32(py) + 0.5
		row := py * fb.Width
		for px := minX; px <= maxX; px++ {
			cx := float32(px) + 0.5

			// Barycentric weights from signed sub-areas
			w0 := ((x1-cx)*(y2-cy) - (x2-cx)*(y1-cy)) * invArea
			w1 := ((x2-cx)*(y0-cy) - (x0-cx)*(y2-cy)) * invArea
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v[0].Pos.Z() + w1*v[1].Pos.Z() + w2*v[2].Pos.Z()
			idx := row + px
			if z >= fb.Depth[idx] {
				continue
			}
			fb.Depth[idx] = z

			c := v[0].Color.Mul(w0).Add(v[1].Color.Mul(w1)).Add(v[2].Color.Mul(w2)).Mul(shade)
			o := idx * 4
			fb.Color[o] = toByte(c.X())
			fb.Color[o+1] = toByte(c.Y())
			fb.Color[o+2] = toByte(c.Z())
			fb.Color[o+3] = 255
		}
	}
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
