package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

// MeshBinMagic identifies an indexed binary mesh file.
var MeshBinMagic = [16]byte{0, 'C', 'O', 'M', 'P', '3', '8', '1', '1', 'm', 'e', 's', 'h', '0', '0', 0}

// Binary mesh format errors.
var (
	ErrInvalidMeshMagic    = errors.New("invalid mesh magic")
	ErrTruncatedMeshData   = errors.New("truncated mesh data")
	ErrMeshIndexRange      = errors.New("mesh index out of range")
	ErrPartialMeshTriangle = errors.New("mesh index count is not a multiple of 3")
)

const (
	meshBinHeaderSize = 16 + 4 + 4
	vec3Size          = 12
)

// MeshBinHeader is the fixed-size preamble of a binary mesh.
type MeshBinHeader struct {
	VertexCount uint32
	IndexCount  uint32
}

// ParseMeshBin decodes a binary mesh and unwraps its index list into a flat
// triangle list. Every attribute of output vertex i is read from
// vertex indices[i].
func ParseMeshBin(data []byte) (mesh.Data, error) {
	hdr, err := ParseMeshBinHeader(data)
	if err != nil {
		return mesh.Data{}, err
	}

	vc, ic := uint64(hdr.VertexCount), uint64(hdr.IndexCount)
	need := uint64(meshBinHeaderSize) + ic*4 + 3*vc*vec3Size
	if uint64(len(data)) < need {
		return mesh.Data{}, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedMeshData, need, len(data))
	}
	if ic%3 != 0 {
		return mesh.Data{}, fmt.Errorf("%w: %d indices", ErrPartialMeshTriangle, ic)
	}

	off := meshBinHeaderSize
	indices := make([]uint32, ic)
	for i := range indices {
		indices[i] = binary.LittleEndian.Uint32(data[off:])
		if indices[i] >= hdr.VertexCount {
			return mesh.Data{}, fmt.Errorf("%w: index %d is %d, vertex count %d",
				ErrMeshIndexRange, i, indices[i], hdr.VertexCount)
		}
		off += 4
	}

	readBlock := func() []mgl32.Vec3 {
		block := make([]mgl32.Vec3, vc)
		for i := range block {
			block[i] = readVec3(data[off:])
			off += vec3Size
		}
		out := make([]mgl32.Vec3, len(indices))
		for i, idx := range indices {
			out[i] = block[idx]
		}
		return out
	}

	d := mesh.Data{}
	d.Positions = readBlock()
	d.Colors = readBlock()
	d.Normals = readBlock()
	return d, nil
}

// ParseMeshBinHeader checks the magic and returns the element counts.
func ParseMeshBinHeader(data []byte) (MeshBinHeader, error) {
	if len(data) < len(MeshBinMagic) {
		return MeshBinHeader{}, ErrTruncatedMeshData
	}
	if !bytes.Equal(data[:len(MeshBinMagic)], MeshBinMagic[:]) {
		return MeshBinHeader{}, ErrInvalidMeshMagic
	}
	if len(data) < meshBinHeaderSize {
		return MeshBinHeader{}, fmt.Errorf("%w: reading counts", ErrTruncatedMeshData)
	}
	return MeshBinHeader{
		VertexCount: binary.LittleEndian.Uint32(data[16:20]),
		IndexCount:  binary.LittleEndian.Uint32(data[20:24]),
	}, nil
}

// ParseMeshBinFile parses a binary mesh from disk.
func ParseMeshBinFile(path string) (mesh.Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mesh.Data{}, fmt.Errorf("reading mesh file: %w", err)
	}
	d, err := ParseMeshBin(data)
	if err != nil {
		return mesh.Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// EncodeMeshBin writes d as a binary mesh with one index per vertex.
// Texture coordinates are not part of the format and are dropped.
func EncodeMeshBin(w io.Writer, d mesh.Data) error {
	if err := d.Validate(); err != nil {
		return err
	}
	n := d.Len()
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("mesh too large: %d vertices", n)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(MeshBinMagic[:]); err != nil {
		return err
	}

	hdr := MeshBinHeader{VertexCount: uint32(n), IndexCount: uint32(n)}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := binary.Write(bw, binary.LittleEndian, uint32(i)); err != nil {
			return fmt.Errorf("writing indices: %w", err)
		}
	}
	for _, block := range [][]mgl32.Vec3{d.Positions, d.Colors, d.Normals} {
		if err := binary.Write(bw, binary.LittleEndian, block); err != nil {
			return fmt.Errorf("writing attributes: %w", err)
		}
	}
	return bw.Flush()
}

// SaveMeshBinFile writes d to path in the binary mesh format.
func SaveMeshBinFile(path string, d mesh.Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mesh file: %w", err)
	}
	if err := EncodeMeshBin(f, d); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func readVec3(b []byte) mgl32.Vec3 {
	return mgl32.Vec3{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}
}
