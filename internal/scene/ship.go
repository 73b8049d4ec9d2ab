package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	lpmath "github.com/Faultbox/launchpad/pkg/math"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

// Generator builds one primitive.
type Generator func(mesh.Options) mesh.Data

// Part is one primitive of a composite model.
type Part struct {
	Name     string
	Generate Generator
	Options  mesh.Options
}

// Build runs the part's generator.
func (p Part) Build() mesh.Data {
	return p.Generate(p.Options)
}

const halfPi = math.Pi / 2

// part is a capped primitive placed by Rz(rotZ)·S(scale)·T(offset).
func part(name string, gen Generator, detail int, color mgl32.Vec3, rotZ float32, scale, offset mgl32.Vec3) Part {
	return Part{
		Name:     name,
		Generate: gen,
		Options: mesh.Options{
			Capped:       true,
			Subdivisions: detail,
			Color:        color,
			PreTransform: lpmath.Compose(
				mgl32.HomogRotate3DZ(rotZ),
				mgl32.Scale3D(scale[0], scale[1], scale[2]),
				mgl32.Translate3D(offset[0], offset[1], offset[2]),
			),
		},
	}
}

// Grid resolution of the ship's box-shaped parts.
const (
	placeholderCubeDetail = 20
	boxDetail             = 2
)

var (
	hullGray    = mgl32.Vec3{0.4, 0.4, 0.4}
	hullRed     = mgl32.Vec3{3.4, 0.4, 0.4}
	boosterTeal = mgl32.Vec3{0, 0.6, 0.7}
	noseYellow  = mgl32.Vec3{1, 1, 0}
)

// ShipBody lists the round parts of the spaceship plus the placeholder
// cube, in assembly order. detail sets the angular resolution of the
// cylinders and the nose cone.
//
// The placeholder cube is scaled to zero and only contributes degenerate
// triangles; it is kept so the vertex layout stays stable.
func ShipBody(detail int) []Part {
	return []Part{
		part("hull", mesh.Cylinder, detail, hullRed, halfPi, mgl32.Vec3{3, 0.5, 0.5}, mgl32.Vec3{0.1, 0, 0}),
		part("booster-left", mesh.Cylinder, detail, boosterTeal, halfPi, mgl32.Vec3{0.9, 0.3, 0.4}, mgl32.Vec3{1.3, 2.5, 0}),
		part("booster-right", mesh.Cylinder, detail, boosterTeal, halfPi, mgl32.Vec3{0.9, 0.3, 0.4}, mgl32.Vec3{1.3, -2.5, 0}),
		part("placeholder", mesh.Cube, placeholderCubeDetail, hullGray, -halfPi, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -0.9, 0}),
		part("nose", mesh.Cone, detail, noseYellow, -halfPi, mgl32.Vec3{1, 0.5, 0.5}, mgl32.Vec3{-4.3, 0, 0}),
	}
}

// ShipBoxes lists the three box parts around the engine section.
func ShipBoxes() []Part {
	return []Part{
		part("engine-block", mesh.Cube, boxDetail, hullGray, -halfPi, mgl32.Vec3{0.75, 0.5, 0.5}, mgl32.Vec3{0.1, 0, 0}),
		part("fin-left", mesh.Cube, boxDetail, hullGray, -halfPi, mgl32.Vec3{0.5, 0.6, 0.6}, mgl32.Vec3{-0.6, 0.9, 0}),
		part("fin-right", mesh.Cube, boxDetail, hullGray, -halfPi, mgl32.Vec3{0.5, 0.6, 0.6}, mgl32.Vec3{-0.6, -0.9, 0}),
	}
}

// ShipParts returns every part in the order they appear in BuildShip's output.
func ShipParts(detail int) []Part {
	return append(ShipBody(detail), ShipBoxes()...)
}

// BuildShip generates all parts and merges them into one record:
// body parts first, then the boxes.
func BuildShip(detail int) mesh.Data {
	body := buildAll(ShipBody(detail))
	boxes := buildAll(ShipBoxes())
	return mesh.Concatenate(body, boxes)
}

func buildAll(parts []Part) mesh.Data {
	built := make([]mesh.Data, len(parts))
	for i, p := range parts {
		built[i] = p.Build()
	}
	return mesh.ConcatenateAll(built...)
}
