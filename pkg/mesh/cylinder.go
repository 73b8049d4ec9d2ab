package mesh

import "github.com/go-gl/mathgl/mgl32"

// Cylinder generates a unit-radius cylinder running from x=0 to x=1 around
// the X axis.
//
// Shell normals are the radial Y-Z direction of each vertex's angle. When
// capped, each segment also emits one fan triangle per end, facing -X at
// x=0 and +X at x=1, right after its two shell triangles.
func Cylinder(o Options) Data {
	o.mustCheck()
	n := o.Subdivisions

	perSegment := 6
	if o.Capped {
		perSegment = 12
	}
	pos := make([]mgl32.Vec3, 0, perSegment*n)
	nor := make([]mgl32.Vec3, 0, perSegment*n)

	negX := mgl32.Vec3{-1, 0, 0}
	posX := mgl32.Vec3{1, 0, 0}

	prevY, prevZ := float32(1), float32(0)
	for i := 0; i < n; i++ {
		y, z := ring(i, n)
		prev := mgl32.Vec3{0, prevY, prevZ}
		cur := mgl32.Vec3{0, y, z}

		pos = append(pos,
			mgl32.Vec3{0, prevY, prevZ},
			mgl32.Vec3{0, y, z},
			mgl32.Vec3{1, prevY, prevZ},
			mgl32.Vec3{0, y, z},
			mgl32.Vec3{1, y, z},
			mgl32.Vec3{1, prevY, prevZ},
		)
		nor = append(nor, prev, cur, prev, cur, cur, prev)

		if o.Capped {
			pos = append(pos,
				mgl32.Vec3{0, y, z},
				mgl32.Vec3{0, prevY, prevZ},
				mgl32.Vec3{0, 0, 0},
				mgl32.Vec3{1, prevY, prevZ},
				mgl32.Vec3{1, y, z},
				mgl32.Vec3{1, 0, 0},
			)
			nor = append(nor, negX, negX, negX, posX, posX, posX)
		}

		prevY, prevZ = y, z
	}

	return finish(pos, nor, o)
}
