package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

// createTestMeshBin builds an indexed quad: four vertices, two triangles.
func createTestMeshBin(indices []uint32) []byte {
	buf := new(bytes.Buffer)
	buf.Write(MeshBinMagic[:])

	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	colors := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	normals := []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}}

	binary.Write(buf, binary.LittleEndian, uint32(len(positions)))
	binary.Write(buf, binary.LittleEndian, uint32(len(indices)))
	binary.Write(buf, binary.LittleEndian, indices)
	binary.Write(buf, binary.LittleEndian, positions)
	binary.Write(buf, binary.LittleEndian, colors)
	binary.Write(buf, binary.LittleEndian, normals)

	return buf.Bytes()
}

func TestParseMeshBin_UnwrapsIndices(t *testing.T) {
	data := createTestMeshBin([]uint32{0, 1, 2, 0, 2, 3})

	d, err := ParseMeshBin(data)
	if err != nil {
		t.Fatalf("ParseMeshBin failed: %v", err)
	}
	if d.Len() != 6 {
		t.Fatalf("expected 6 vertices, got %d", d.Len())
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	if d.Positions[4] != (mgl32.Vec3{1, 1, 0}) {
		t.Errorf("expected vertex 4 at (1,1,0), got %v", d.Positions[4])
	}
	if d.Colors[5] != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected vertex 5 white, got %v", d.Colors[5])
	}
	if d.Colors[3] != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("expected shared vertex 3 red, got %v", d.Colors[3])
	}
	if d.HasTexCoords() {
		t.Error("binary meshes carry no texcoords")
	}
}

func TestParseMeshBin_Errors(t *testing.T) {
	valid := createTestMeshBin([]uint32{0, 1, 2})

	badMagic := append([]byte(nil), valid...)
	badMagic[1] = 'X'

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncatedMeshData},
		{"bad magic", badMagic, ErrInvalidMeshMagic},
		{"no counts", valid[:18], ErrTruncatedMeshData},
		{"short body", valid[:len(valid)-1], ErrTruncatedMeshData},
		{"index range", createTestMeshBin([]uint32{0, 1, 4}), ErrMeshIndexRange},
		{"partial triangle", createTestMeshBin([]uint32{0, 1}), ErrPartialMeshTriangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMeshBin(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEncodeMeshBin_Generated(t *testing.T) {
	o := mesh.DefaultOptions()
	o.Subdivisions = 6
	o.Color = mgl32.Vec3{0.2, 0.4, 0.6}
	src := mesh.Cylinder(o)

	var buf bytes.Buffer
	if err := EncodeMeshBin(&buf, src); err != nil {
		t.Fatalf("EncodeMeshBin failed: %v", err)
	}

	hdr, err := ParseMeshBinHeader(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseMeshBinHeader failed: %v", err)
	}
	if int(hdr.VertexCount) != src.Len() || int(hdr.IndexCount) != src.Len() {
		t.Errorf("expected %d/%d, got %d/%d", src.Len(), src.Len(), hdr.VertexCount, hdr.IndexCount)
	}

	got, err := ParseMeshBin(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseMeshBin failed: %v", err)
	}
	for i := range src.Positions {
		if got.Positions[i] != src.Positions[i] || got.Normals[i] != src.Normals[i] || got.Colors[i] != src.Colors[i] {
			t.Fatalf("vertex %d differs after encoding", i)
		}
	}
}

func TestEncodeMeshBin_RejectsInvalid(t *testing.T) {
	bad := mesh.Data{Positions: []mgl32.Vec3{{}, {}, {}}}
	if err := EncodeMeshBin(&bytes.Buffer{}, bad); !errors.Is(err, mesh.ErrAttributeMismatch) {
		t.Errorf("expected ErrAttributeMismatch, got %v", err)
	}
}

func TestMeshBinFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cone.mesh")
	src := mesh.Cone(mesh.DefaultOptions())

	if err := SaveMeshBinFile(path, src); err != nil {
		t.Fatalf("SaveMeshBinFile failed: %v", err)
	}
	got, err := ParseMeshBinFile(path)
	if err != nil {
		t.Fatalf("ParseMeshBinFile failed: %v", err)
	}
	if got.Len() != src.Len() {
		t.Errorf("expected %d vertices, got %d", src.Len(), got.Len())
	}

	if _, err := ParseMeshBinFile(filepath.Join(t.TempDir(), "missing.mesh")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
