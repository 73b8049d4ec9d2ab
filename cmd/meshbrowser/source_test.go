package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/formats"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestBuildGenerators(t *testing.T) {
	for g := GenCone; g <= GenShip; g++ {
		src := DefaultSource()
		src.Generator = g
		src.Subdivisions = 4
		d, err := src.Build()
		if err != nil {
			t.Fatalf("%v: %v", g, err)
		}
		if d.Len() == 0 {
			t.Errorf("%v: empty mesh", g)
		}
		if err := d.Validate(); err != nil {
			t.Errorf("%v: %v", g, err)
		}
	}
}

func TestBuildRejectsZeroSubdivisions(t *testing.T) {
	src := DefaultSource()
	src.Subdivisions = 0
	if _, err := src.Build(); err == nil {
		t.Error("expected error for zero subdivisions")
	}
}

func TestPreTransformScalesBounds(t *testing.T) {
	src := DefaultSource()
	src.Generator = GenCube
	src.Subdivisions = 2
	src.Scale = [3]float32{2, 1, 3}

	b := mustBuild(t, src).Bounds()
	size := b.Size()
	want := mgl32.Vec3{2, 1, 3}
	for i := range want {
		if abs(size[i]-want[i]) > 1e-4 {
			t.Errorf("size[%d] = %v, want %v", i, size[i], want[i])
		}
	}
}

func TestPreTransformRotation(t *testing.T) {
	src := DefaultSource()
	src.RotationDeg = [3]float32{0, 0, 90}

	// The unit cylinder runs along +X; a quarter turn about Z moves it to +Y.
	p := src.PreTransform().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if abs(p[0]) > 1e-5 || abs(p[1]-1) > 1e-5 {
		t.Errorf("rotated point = %v, want (0, 1, 0)", p)
	}
}

func TestBuildFromFile(t *testing.T) {
	o := mesh.DefaultOptions()
	o.Subdivisions = 6
	cyl := mesh.Cylinder(o)
	path := filepath.Join(t.TempDir(), "cyl.mesh")
	if err := formats.SaveMeshBinFile(path, cyl); err != nil {
		t.Fatal(err)
	}

	src := DefaultSource()
	src.File = path
	src.Scale = [3]float32{2, 2, 2}
	d := mustBuild(t, src)

	if d.Len() != cyl.Len() {
		t.Fatalf("Len = %d, want %d", d.Len(), cyl.Len())
	}
	if got := d.Bounds().Max[0]; abs(got-2) > 1e-4 {
		t.Errorf("max x = %v, want 2", got)
	}

	src.File = filepath.Join(t.TempDir(), "missing.mesh")
	if _, err := src.Build(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want ErrNotExist", err)
	}
}

func TestComputeStats(t *testing.T) {
	o := mesh.DefaultOptions()
	o.Subdivisions = 4
	s := ComputeStats(mesh.Cylinder(o))
	if s.Invalid != nil {
		t.Errorf("Invalid = %v", s.Invalid)
	}
	if s.Triangles*3 != s.Vertices {
		t.Errorf("Triangles = %d for %d vertices", s.Triangles, s.Vertices)
	}

	bad := mesh.Data{Positions: make([]mgl32.Vec3, 3)}
	if ComputeStats(bad).Invalid == nil {
		t.Error("expected validation error for missing colors and normals")
	}
}

func TestGeneratorString(t *testing.T) {
	if GenCylinder.String() != "Cylinder" {
		t.Errorf("String = %q", GenCylinder.String())
	}
	if Generator(42).String() != "Unknown" {
		t.Errorf("String = %q", Generator(42).String())
	}
}

func mustBuild(t *testing.T, src Source) mesh.Data {
	t.Helper()
	d, err := src.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}
