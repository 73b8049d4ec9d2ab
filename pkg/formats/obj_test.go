package formats

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testQuadOBJ = `o pad
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
vn 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
usemtl concrete
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const testQuadMTL = `newmtl concrete
Ka 0.2 0.3 0.4
Kd 0.8 0.8 0.8
map_Kd pad.png
`

func TestParseOBJ_FanTriangulates(t *testing.T) {
	o, err := ParseOBJ(strings.NewReader(testQuadOBJ), strings.NewReader(testQuadMTL))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	d := o.Mesh
	if d.Len() != 6 {
		t.Fatalf("expected 6 vertices, got %d", d.Len())
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	// Second triangle of the fan is (v1, v3, v4).
	if d.Positions[3] != (mgl32.Vec3{0, 0, 0}) || d.Positions[5] != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("unexpected fan: %v", d.Positions[3:])
	}
	if d.Normals[4] != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("expected up normal, got %v", d.Normals[4])
	}
	if len(d.TexCoords) != 6 || d.TexCoords[1] != (mgl32.Vec2{1, 0}) {
		t.Errorf("unexpected texcoords %v", d.TexCoords)
	}
	if d.Colors[0] != (mgl32.Vec3{0.2, 0.3, 0.4}) {
		t.Errorf("expected ambient color, got %v", d.Colors[0])
	}
	if len(o.Textures) != 1 || o.Textures[0] != "pad.png" {
		t.Errorf("expected pad.png texture, got %v", o.Textures)
	}
}

func TestParseOBJ_NoMaterial(t *testing.T) {
	src := "o tri\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

	o, err := ParseOBJ(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	d := o.Mesh
	if d.Len() != 3 {
		t.Fatalf("expected 3 vertices, got %d", d.Len())
	}
	if d.Colors[2] != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected white, got %v", d.Colors[2])
	}
	if d.Normals[0] != (mgl32.Vec3{}) {
		t.Errorf("expected zero normal, got %v", d.Normals[0])
	}
	if d.HasTexCoords() {
		t.Error("expected no texcoords")
	}
}

func TestParseOBJ_DiffuseFallback(t *testing.T) {
	src := "o tri\nv 0 0 0\nv 1 0 0\nv 0 1 0\nusemtl paint\nf 1 2 3\n"
	mtl := "newmtl paint\nKd 0.5 0.25 0\n"

	o, err := ParseOBJ(strings.NewReader(src), strings.NewReader(mtl))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if o.Mesh.Colors[0] != (mgl32.Vec3{0.5, 0.25, 0}) {
		t.Errorf("expected diffuse color, got %v", o.Mesh.Colors[0])
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	_, err := ParseOBJ(strings.NewReader("o tri\nv 0 0 0\nv 1 0 0\nf 1 2 5\n"), nil)
	if !errors.Is(err, ErrOBJIndexRange) {
		t.Errorf("expected ErrOBJIndexRange, got %v", err)
	}

	_, err = ParseOBJ(strings.NewReader("o empty\nv 0 0 0\n"), nil)
	if !errors.Is(err, ErrOBJEmpty) {
		t.Errorf("expected ErrOBJEmpty, got %v", err)
	}
}

func TestParseOBJFile_ResolvesMaterialLibrary(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "pad.obj")

	if err := os.WriteFile(objPath, []byte("mtllib pad.mtl\n"+testQuadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pad.mtl"), []byte(testQuadMTL), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := ParseOBJFile(objPath)
	if err != nil {
		t.Fatalf("ParseOBJFile failed: %v", err)
	}
	if o.Mesh.Colors[0] != (mgl32.Vec3{0.2, 0.3, 0.4}) {
		t.Errorf("material not applied: %v", o.Mesh.Colors[0])
	}
	want := filepath.Join(dir, "pad.png")
	if len(o.Textures) != 1 || o.Textures[0] != want {
		t.Errorf("expected %s, got %v", want, o.Textures)
	}
}
