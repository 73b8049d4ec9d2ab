package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(a, b mgl32.Vec3) bool {
	return abs(a[0]-b[0]) < 0.0001 && abs(a[1]-b[1]) < 0.0001 && abs(a[2]-b[2]) < 0.0001
}

// triangle builds a one-triangle mesh with a uniform color.
func triangle(c mgl32.Vec3) Data {
	pos := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	return Data{
		Positions: pos,
		Colors:    []mgl32.Vec3{c, c, c},
		Normals:   []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
	}
}

func TestValidate(t *testing.T) {
	ok := triangle(mgl32.Vec3{1, 1, 1})

	shortColors := triangle(mgl32.Vec3{1, 1, 1})
	shortColors.Colors = shortColors.Colors[:2]

	badUV := triangle(mgl32.Vec3{1, 1, 1})
	badUV.TexCoords = []mgl32.Vec2{{0, 0}}

	partial := Data{
		Positions: []mgl32.Vec3{{}, {}},
		Colors:    []mgl32.Vec3{{}, {}},
		Normals:   []mgl32.Vec3{{}, {}},
	}

	tests := []struct {
		name string
		data Data
		want error
	}{
		{"valid", ok, nil},
		{"empty", Data{}, nil},
		{"color mismatch", shortColors, ErrAttributeMismatch},
		{"texcoord mismatch", badUV, ErrTexCoordMismatch},
		{"partial triangle", partial, ErrPartialTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	d := Data{Positions: []mgl32.Vec3{{-1, 2, 0}, {3, -4, 5}, {0, 0, -2}}}
	b := d.Bounds()

	if b.Min != (mgl32.Vec3{-1, -4, -2}) {
		t.Errorf("Min = %v", b.Min)
	}
	if b.Max != (mgl32.Vec3{3, 2, 5}) {
		t.Errorf("Max = %v", b.Max)
	}
	if b.Center() != (mgl32.Vec3{1, -1, 1.5}) {
		t.Errorf("Center = %v", b.Center())
	}
	if b.Size() != (mgl32.Vec3{4, 6, 7}) {
		t.Errorf("Size = %v", b.Size())
	}

	if (Data{}).Bounds() != (Bounds{}) {
		t.Error("empty mesh should have zero bounds")
	}
}

func TestInterleave(t *testing.T) {
	d := triangle(mgl32.Vec3{0.5, 0.25, 1})
	out := d.Interleave()

	if len(out) != 3*Stride {
		t.Fatalf("len = %d, want %d", len(out), 3*Stride)
	}

	// Second vertex: position (1,0,0), color, normal (0,0,1), uv zero.
	v := out[Stride : 2*Stride]
	want := []float32{1, 0, 0, 0.5, 0.25, 1, 0, 0, 1, 0, 0}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("vertex 1 float %d = %f, want %f", i, v[i], want[i])
		}
	}

	d.TexCoords = []mgl32.Vec2{{0, 0}, {1, 0}, {0.5, 1}}
	out = d.Interleave()
	if out[2*Stride+9] != 0.5 || out[2*Stride+10] != 1 {
		t.Errorf("uv not packed: got (%f, %f)", out[2*Stride+9], out[2*Stride+10])
	}
}

func TestClone(t *testing.T) {
	d := triangle(mgl32.Vec3{1, 0, 0})
	c := d.Clone()
	c.Positions[0] = mgl32.Vec3{9, 9, 9}
	c.Colors[0] = mgl32.Vec3{0, 0, 0}

	if d.Positions[0] != (mgl32.Vec3{0, 0, 0}) {
		t.Error("Clone shares positions with the source")
	}
	if d.Colors[0] != (mgl32.Vec3{1, 0, 0}) {
		t.Error("Clone shares colors with the source")
	}
}

func TestCounts(t *testing.T) {
	d := triangle(mgl32.Vec3{})
	if d.Len() != 3 || d.TriangleCount() != 1 {
		t.Errorf("Len=%d TriangleCount=%d", d.Len(), d.TriangleCount())
	}
	if d.HasTexCoords() {
		t.Error("procedural triangle should have no texcoords")
	}
}
