package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/internal/scene"
	"github.com/Faultbox/launchpad/pkg/formats"
	lpmath "github.com/Faultbox/launchpad/pkg/math"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

// Generator selects the procedural primitive shown in the preview.
type Generator int

const (
	GenCone Generator = iota
	GenCube
	GenCylinder
	GenShip
)

var generatorNames = [...]string{"Cone", "Cube", "Cylinder", "Ship"}

func (g Generator) String() string {
	if g < 0 || int(g) >= len(generatorNames) {
		return "Unknown"
	}
	return generatorNames[g]
}

// Source describes what the browser displays: a generated primitive, or
// a mesh file when File is set. The pre-transform applies to both.
type Source struct {
	Generator    Generator
	Subdivisions int32
	Capped       bool
	Color        [3]float32
	Scale        [3]float32
	RotationDeg  [3]float32 // applied X, then Y, then Z
	File         string
}

// DefaultSource is a unit capped cone.
func DefaultSource() Source {
	return Source{
		Generator:    GenCone,
		Subdivisions: mesh.DefaultSubdivisions,
		Capped:       true,
		Color:        [3]float32{1, 1, 1},
		Scale:        [3]float32{1, 1, 1},
	}
}

// PreTransform rotates the scaled primitive.
func (s Source) PreTransform() mgl32.Mat4 {
	return lpmath.Compose(
		mgl32.HomogRotate3DZ(lpmath.Radians(s.RotationDeg[2])),
		mgl32.HomogRotate3DY(lpmath.Radians(s.RotationDeg[1])),
		mgl32.HomogRotate3DX(lpmath.Radians(s.RotationDeg[0])),
		mgl32.Scale3D(s.Scale[0], s.Scale[1], s.Scale[2]),
	)
}

// Options converts the source settings to generator options.
func (s Source) Options() mesh.Options {
	o := mesh.DefaultOptions()
	o.Subdivisions = int(s.Subdivisions)
	o.Capped = s.Capped
	o.Color = mgl32.Vec3(s.Color)
	o.PreTransform = s.PreTransform()
	return o
}

// Build produces the mesh record for the source.
func (s Source) Build() (mesh.Data, error) {
	if s.File != "" {
		d, err := formats.LoadMesh(s.File)
		if err != nil {
			return mesh.Data{}, err
		}
		d = d.Clone()
		lpmath.NewAffine(s.PreTransform()).Apply(d.Positions, d.Normals)
		return d, nil
	}

	o := s.Options()
	if err := o.Check(); err != nil {
		return mesh.Data{}, err
	}
	switch s.Generator {
	case GenCone:
		return mesh.Cone(o), nil
	case GenCube:
		return mesh.Cube(o), nil
	case GenCylinder:
		return mesh.Cylinder(o), nil
	case GenShip:
		ship := scene.BuildShip(o.Subdivisions)
		lpmath.NewAffine(o.PreTransform).Apply(ship.Positions, ship.Normals)
		return ship, nil
	default:
		return mesh.Data{}, fmt.Errorf("unknown generator %d", s.Generator)
	}
}

// Stats summarizes a mesh for the stats panel.
type Stats struct {
	Vertices  int
	Triangles int
	TexCoords bool
	Bounds    mesh.Bounds
	Invalid   error
}

// ComputeStats inspects d.
func ComputeStats(d mesh.Data) Stats {
	return Stats{
		Vertices:  d.Len(),
		Triangles: d.TriangleCount(),
		TexCoords: d.HasTexCoords(),
		Bounds:    d.Bounds(),
		Invalid:   d.Validate(),
	}
}
