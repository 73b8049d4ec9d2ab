package mesh

import "github.com/go-gl/mathgl/mgl32"

// Blocks emitted per grid cell and vertices per block.
const (
	cubeBlocksPerCell = 9
	cubeEdgeStrips    = 4
	verticesPerQuad   = 6
)

// planar maps grid coordinates (u, v) onto a cube plane.
type planar func(u, v float32) mgl32.Vec3

// appendQuad emits two triangles covering [u0,u1]x[v0,v1] that share the
// (u1,v0)-(u0,v1) diagonal.
func appendQuad(pos []mgl32.Vec3, u0, v0, u1, v1 float32, at planar) []mgl32.Vec3 {
	return append(pos,
		at(u0, v0), at(u1, v0), at(u0, v1),
		at(u1, v0), at(u1, v1), at(u0, v1),
	)
}

// cubeCellPlanes lists, in emission order, the planes every grid cell is
// stamped onto. The last three repeat the x=+0.5 and y=±0.5 faces with the
// grid axes swapped.
var cubeCellPlanes = []planar{
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{u, v, 0.5} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{u, v, -0.5} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{-0.5, v, u} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{0.5, v, u} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{u, 0.5, v} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{u, -0.5, v} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{0.5, u, v} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{v, 0.5, u} },
	func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{v, -0.5, u} },
}

// Cube generates a unit cube centered at the origin with an n x n grid on
// each face. Face normals equal the vertex positions.
//
// When capped, every grid column adds a full-height strip on the top,
// bottom, front and back faces with axis-aligned normals.
func Cube(o Options) Data {
	o.mustCheck()
	n := o.Subdivisions
	step := 1 / float32(n)

	count := cubeBlocksPerCell * verticesPerQuad * n * n
	if o.Capped {
		count += cubeEdgeStrips * verticesPerQuad * n
	}
	pos := make([]mgl32.Vec3, 0, count)
	nor := make([]mgl32.Vec3, 0, count)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := -0.5 + float32(i)*step
			y := -0.5 + float32(j)*step
			nx, ny := x+step, y+step

			for _, plane := range cubeCellPlanes {
				pos = appendQuad(pos, x, y, nx, ny, plane)
			}
		}
	}
	nor = append(nor, pos...)

	if o.Capped {
		up := mgl32.Vec3{0, 1, 0}
		down := mgl32.Vec3{0, -1, 0}
		front := mgl32.Vec3{0, 0, 1}
		back := mgl32.Vec3{0, 0, -1}

		for i := 0; i < n; i++ {
			x := -0.5 + float32(i)*step
			nx := x + step

			pos = appendQuad(pos, x, -0.5, nx, 0.5, func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{u, 0.5, v} })
			nor = appendConst(nor, up, verticesPerQuad)

			pos = appendQuad(pos, x, -0.5, nx, 0.5, func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{u, -0.5, v} })
			nor = appendConst(nor, down, verticesPerQuad)

			pos = appendQuad(pos, x, -0.5, nx, 0.5, func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{u, v, 0.5} })
			nor = appendConst(nor, front, verticesPerQuad)

			// Back strip winds the other way round.
			pos = appendQuad(pos, -0.5, x, 0.5, nx, func(u, v float32) mgl32.Vec3 { return mgl32.Vec3{v, u, -0.5} })
			nor = appendConst(nor, back, verticesPerQuad)
		}
	}

	return finish(pos, nor, o)
}

func appendConst(dst []mgl32.Vec3, v mgl32.Vec3, n int) []mgl32.Vec3 {
	for i := 0; i < n; i++ {
		dst = append(dst, v)
	}
	return dst
}
