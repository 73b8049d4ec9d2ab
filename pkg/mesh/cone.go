package mesh

import "github.com/go-gl/mathgl/mgl32"

// Cone generates a cone with its apex at the origin and a unit-radius base
// circle centered at (1, 0, 0) in the Y-Z plane.
//
// Shell normals equal the vertex positions (the apex normal is zero), which
// approximates rather than matches the analytic cone normal. The cap is a
// single triangle over the base disk, not a full fan, so it only closes the
// base completely for very low subdivision counts.
func Cone(o Options) Data {
	o.mustCheck()
	n := o.Subdivisions

	count := 3 * n
	if o.Capped {
		count += 3
	}
	pos := make([]mgl32.Vec3, 0, count)
	nor := make([]mgl32.Vec3, 0, count)

	prevY, prevZ := float32(1), float32(0)
	for i := 0; i < n; i++ {
		y, z := ring(i, n)

		pos = append(pos,
			mgl32.Vec3{0, 0, 0},
			mgl32.Vec3{1, y, z},
			mgl32.Vec3{1, prevY, prevZ},
		)
		nor = append(nor, pos[len(pos)-3:]...)

		prevY, prevZ = y, z
	}

	if o.Capped {
		pos = append(pos,
			mgl32.Vec3{0, 0, 0},
			mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{0.5, 0, 0.5},
		)
		nor = append(nor, pos[len(pos)-3:]...)
	}

	return finish(pos, nor, o)
}
