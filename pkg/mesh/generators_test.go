package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type generator func(Options) Data

func TestGeneratorVertexCounts(t *testing.T) {
	tests := []struct {
		name   string
		gen    generator
		n      int
		capped bool
		want   int
	}{
		{"cone open", Cone, 8, false, 24},
		{"cone capped", Cone, 8, true, 27},
		{"cone single", Cone, 1, true, 6},
		{"cylinder open", Cylinder, 16, false, 96},
		{"cylinder capped", Cylinder, 16, true, 192},
		{"cube open", Cube, 2, false, 216},
		{"cube capped", Cube, 2, true, 264},
		{"cube single capped", Cube, 1, true, 78},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			o.Subdivisions = tt.n
			o.Capped = tt.capped

			d := tt.gen(o)
			if d.Len() != tt.want {
				t.Errorf("Len = %d, want %d", d.Len(), tt.want)
			}
			if err := d.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
			if d.HasTexCoords() {
				t.Error("generated mesh has texcoords")
			}
		})
	}
}

func TestConeFourSegments(t *testing.T) {
	red := mgl32.Vec3{1, 0, 0}
	o := DefaultOptions()
	o.Subdivisions = 4
	o.Capped = false
	o.Color = red

	d := Cone(o)
	if d.Len() != 12 {
		t.Fatalf("Len = %d, want 12", d.Len())
	}
	for i, c := range d.Colors {
		if c != red {
			t.Errorf("color %d = %v, want red", i, c)
		}
	}
	for seg := 0; seg < 4; seg++ {
		if d.Positions[seg*3] != (mgl32.Vec3{}) {
			t.Errorf("segment %d apex = %v", seg, d.Positions[seg*3])
		}
	}

	// First segment sweeps from angle 0 to a quarter turn.
	if !vecNear(d.Positions[1], mgl32.Vec3{1, 0, 1}) {
		t.Errorf("segment 0 current = %v", d.Positions[1])
	}
	if !vecNear(d.Positions[2], mgl32.Vec3{1, 1, 0}) {
		t.Errorf("segment 0 previous = %v", d.Positions[2])
	}
	// Last segment closes the circle back at angle 2π.
	if !vecNear(d.Positions[10], mgl32.Vec3{1, 1, 0}) {
		t.Errorf("segment 3 current = %v", d.Positions[10])
	}
}

func TestConeNormalsEqualPositions(t *testing.T) {
	d := Cone(DefaultOptions())
	for i := range d.Positions {
		if d.Normals[i] != d.Positions[i] {
			t.Fatalf("vertex %d: normal %v != position %v", i, d.Normals[i], d.Positions[i])
		}
	}
}

func TestCylinderShape(t *testing.T) {
	o := DefaultOptions()
	o.Subdivisions = 8
	d := Cylinder(o)

	for i, p := range d.Positions {
		if p[0] != 0 && p[0] != 1 {
			t.Fatalf("vertex %d x = %f, want 0 or 1", i, p[0])
		}
		r := p[1]*p[1] + p[2]*p[2]
		if r > 1.0001 {
			t.Fatalf("vertex %d outside unit radius: %v", i, p)
		}
	}

	// Caps follow each segment's shell: six shell vertices then two fan triangles.
	for i := 6; i < 9; i++ {
		if d.Normals[i] != (mgl32.Vec3{-1, 0, 0}) {
			t.Errorf("normal %d = %v, want -X", i, d.Normals[i])
		}
		if d.Positions[i][0] != 0 {
			t.Errorf("near cap vertex %d at x=%f", i, d.Positions[i][0])
		}
	}
	for i := 9; i < 12; i++ {
		if d.Normals[i] != (mgl32.Vec3{1, 0, 0}) {
			t.Errorf("normal %d = %v, want +X", i, d.Normals[i])
		}
	}
	if d.Positions[8] != (mgl32.Vec3{0, 0, 0}) || d.Positions[11] != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("cap centers = %v, %v", d.Positions[8], d.Positions[11])
	}
}

func TestCubeStaysInUnitBox(t *testing.T) {
	o := DefaultOptions()
	o.Subdivisions = 3
	b := Cube(o).Bounds()

	if !vecNear(b.Min, mgl32.Vec3{-0.5, -0.5, -0.5}) || !vecNear(b.Max, mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("bounds = %v", b)
	}
}

func TestCubeCapNormals(t *testing.T) {
	o := DefaultOptions()
	o.Subdivisions = 1
	d := Cube(o)

	// One cell of nine blocks, then top, bottom, front and back strips.
	want := []mgl32.Vec3{{0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for s, n := range want {
		for k := 0; k < 6; k++ {
			i := 54 + s*6 + k
			if d.Normals[i] != n {
				t.Errorf("strip %d vertex %d normal = %v, want %v", s, k, d.Normals[i], n)
			}
		}
	}
}

func TestPreTransformScalesNormals(t *testing.T) {
	o := DefaultOptions()
	o.Subdivisions = 4
	o.PreTransform = mgl32.Scale3D(2, 1, 1)
	d := Cylinder(o)

	// Far end moves to x=2.
	if !vecNear(d.Positions[2], mgl32.Vec3{2, 1, 0}) {
		t.Errorf("position = %v", d.Positions[2])
	}
	// Inverse-transpose of diag(2,1,1) halves X components.
	if !vecNear(d.Normals[6], mgl32.Vec3{-0.5, 0, 0}) {
		t.Errorf("cap normal = %v, want (-0.5, 0, 0)", d.Normals[6])
	}
	if !vecNear(d.Normals[2], mgl32.Vec3{0, 1, 0}) {
		t.Errorf("shell normal = %v", d.Normals[2])
	}
}

func TestIdentityMatchesLocalGeometry(t *testing.T) {
	o := DefaultOptions()
	o.Subdivisions = 5

	moved := o.WithTransform(mgl32.Translate3D(0, 0, 0))
	a, b := Cube(o), Cube(moved)
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] || a.Normals[i] != b.Normals[i] {
			t.Fatalf("vertex %d differs under zero translation", i)
		}
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	for _, gen := range []generator{Cone, Cylinder, Cube} {
		a, b := gen(DefaultOptions()), gen(DefaultOptions())
		if a.Len() != b.Len() {
			t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
		}
		for i := range a.Positions {
			if a.Positions[i] != b.Positions[i] || a.Normals[i] != b.Normals[i] {
				t.Fatalf("vertex %d differs between runs", i)
			}
		}
	}
}

func TestConcatenateGeneratedParts(t *testing.T) {
	grey := mgl32.Vec3{0.4, 0.4, 0.4}
	yellow := mgl32.Vec3{1, 1, 0}

	o := DefaultOptions()
	o.Subdivisions = 2
	cube := Cube(o.WithColor(grey))
	cone := Cone(o.WithColor(yellow).WithTransform(mgl32.Translate3D(0, 2, 0)))
	nCube, nCone := cube.Len(), cone.Len()

	ship := Concatenate(cube, cone)
	if ship.Len() != nCube+nCone {
		t.Fatalf("Len = %d, want %d", ship.Len(), nCube+nCone)
	}
	for i, c := range ship.Colors {
		want := grey
		if i >= nCube {
			want = yellow
		}
		if c != want {
			t.Fatalf("color %d = %v, want %v", i, c, want)
		}
	}
	if ship.Positions[nCube] != (mgl32.Vec3{0, 2, 0}) {
		t.Errorf("cone apex = %v", ship.Positions[nCube])
	}
}

func TestZeroSubdivisionsPanics(t *testing.T) {
	for name, gen := range map[string]generator{"cone": Cone, "cylinder": Cylinder, "cube": Cube} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			o := DefaultOptions()
			o.Subdivisions = 0
			gen(o)
		})
	}
}

func TestOptionsCheck(t *testing.T) {
	o := DefaultOptions()
	if err := o.Check(); err != nil {
		t.Errorf("defaults: %v", err)
	}
	o.Subdivisions = -3
	if err := o.Check(); err == nil {
		t.Error("negative subdivisions accepted")
	}
}
