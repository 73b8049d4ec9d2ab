package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/internal/scene"
	"github.com/Faultbox/launchpad/pkg/formats"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

var generators = map[string]func(mesh.Options) mesh.Data{
	"cone":     mesh.Cone,
	"cube":     mesh.Cube,
	"cylinder": mesh.Cylinder,
	"ship": func(o mesh.Options) mesh.Data {
		return scene.BuildShip(o.Subdivisions)
	},
}

// generate builds a named primitive. The ship ignores color and capping.
func generate(name string, o mesh.Options) (mesh.Data, error) {
	gen, ok := generators[strings.ToLower(name)]
	if !ok {
		return mesh.Data{}, fmt.Errorf("unknown primitive %q (want cone, cube, cylinder or ship)", name)
	}
	return gen(o), nil
}

// loadSource treats arg as a primitive name, or a mesh file when it has a
// known extension.
func loadSource(arg string, o mesh.Options) (mesh.Data, error) {
	if _, err := formats.Kind(arg); err == nil {
		return formats.LoadMesh(arg)
	}
	return generate(arg, o)
}

// parseColor reads "r,g,b" with components in [0,1].
func parseColor(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("color %q: want r,g,b", s)
	}
	var c mgl32.Vec3
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("color %q: %w", s, err)
		}
		if v < 0 || v > 1 {
			return mgl32.Vec3{}, fmt.Errorf("color %q: component %g outside [0,1]", s, v)
		}
		c[i] = float32(v)
	}
	return c, nil
}

func printInfo(w io.Writer, name string, d mesh.Data) {
	b := d.Bounds()
	fmt.Fprintf(w, "Mesh:      %s\n", name)
	fmt.Fprintf(w, "Vertices:  %d\n", d.Len())
	fmt.Fprintf(w, "Triangles: %d\n", d.TriangleCount())
	fmt.Fprintf(w, "TexCoords: %v\n", d.HasTexCoords())
	fmt.Fprintf(w, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	if err := d.Validate(); err != nil {
		fmt.Fprintf(w, "Valid:     no (%v)\n", err)
	} else {
		fmt.Fprintln(w, "Valid:     yes")
	}
}

func degToRad(deg float64) float32 {
	return float32(deg * math.Pi / 180)
}
