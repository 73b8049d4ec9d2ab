package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	lpmath "github.com/Faultbox/launchpad/pkg/math"
)

// DefaultSubdivisions is the angular or grid resolution used by DefaultOptions.
const DefaultSubdivisions = 16

// Options configures a primitive generator.
type Options struct {
	// Capped closes the open ends of the shell (cone base, cylinder ends,
	// cube edge strips).
	Capped bool
	// Subdivisions is the number of angular segments (cone, cylinder) or
	// grid cells per face edge (cube). Must be at least 1.
	Subdivisions int
	// Color is replicated to every vertex.
	Color mgl32.Vec3
	// PreTransform places the unit primitive in its target frame.
	PreTransform mgl32.Mat4
}

// DefaultOptions returns a capped, 16-way subdivided white primitive with
// identity pre-transform.
func DefaultOptions() Options {
	return Options{
		Capped:       true,
		Subdivisions: DefaultSubdivisions,
		Color:        mgl32.Vec3{1, 1, 1},
		PreTransform: mgl32.Ident4(),
	}
}

// Check reports whether the options satisfy the generator contract. Use it
// on user-supplied values; generators panic on the same condition.
func (o Options) Check() error {
	if o.Subdivisions < 1 {
		return fmt.Errorf("mesh: subdivisions must be >= 1, got %d", o.Subdivisions)
	}
	return nil
}

// WithTransform returns a copy of o using m as the pre-transform.
func (o Options) WithTransform(m mgl32.Mat4) Options {
	o.PreTransform = m
	return o
}

// WithColor returns a copy of o using c as the vertex color.
func (o Options) WithColor(c mgl32.Vec3) Options {
	o.Color = c
	return o
}

func (o Options) mustCheck() {
	if err := o.Check(); err != nil {
		panic(err.Error())
	}
}

// finish moves local-space geometry into the pre-transform frame and fills
// the color array.
func finish(pos, nor []mgl32.Vec3, o Options) Data {
	lpmath.NewAffine(o.PreTransform).Apply(pos, nor)

	col := make([]mgl32.Vec3, len(pos))
	for i := range col {
		col[i] = o.Color
	}
	return Data{Positions: pos, Colors: col, Normals: nor}
}
