package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

// OBJ format errors.
var (
	ErrOBJIndexRange = errors.New("OBJ face references a missing vertex")
	ErrOBJEmpty      = errors.New("OBJ file has no faces")
)

// OBJ is a Wavefront model flattened into a triangle list.
type OBJ struct {
	Mesh mesh.Data
	// Textures lists the diffuse maps (map_Kd) of the materials used by
	// the faces, in order of first use.
	Textures []string
	Warnings []string
}

// ParseOBJ decodes OBJ geometry and an optional MTL material library.
// Polygons are split into triangle fans. Each vertex takes the ambient
// color of its face material, falling back to the diffuse color and then
// to white.
func ParseOBJ(objData io.Reader, mtlData io.Reader) (*OBJ, error) {
	if mtlData == nil {
		mtlData = strings.NewReader("")
	}
	// Faces before any "o" statement would have no object to attach to.
	src := io.MultiReader(strings.NewReader("o default\n"), objData)

	dec, err := obj.DecodeReader(src, mtlData)
	if err != nil {
		return nil, fmt.Errorf("decoding OBJ: %w", err)
	}
	return flattenOBJ(dec)
}

// ParseOBJFile parses an OBJ file from disk, resolving its mtllib next to
// it. Texture paths are returned relative to the OBJ directory.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}

	dir := filepath.Dir(path)
	var mtl io.Reader
	if lib := findMatlib(data); lib != "" {
		mtlData, err := os.ReadFile(filepath.Join(dir, lib))
		if err != nil {
			return nil, fmt.Errorf("reading material library: %w", err)
		}
		mtl = bytes.NewReader(mtlData)
	}

	o, err := ParseOBJ(bytes.NewReader(data), mtl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, tex := range o.Textures {
		if !filepath.IsAbs(tex) {
			o.Textures[i] = filepath.Join(dir, tex)
		}
	}
	return o, nil
}

// findMatlib returns the first mtllib name referenced by an OBJ source.
func findMatlib(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if name, ok := strings.CutPrefix(line, "mtllib "); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

func flattenOBJ(dec *obj.Decoder) (*OBJ, error) {
	nv := len(dec.Vertices) / 3
	nn := len(dec.Normals) / 3
	nt := len(dec.Uvs) / 2
	hasUV := nt > 0

	out := &OBJ{Warnings: append([]string(nil), dec.Warnings...)}
	d := &out.Mesh
	seenTex := make(map[string]bool)
	white := mgl32.Vec3{1, 1, 1}

	for oi := range dec.Objects {
		for fi, face := range dec.Objects[oi].Faces {
			color := white
			if mat, ok := dec.Materials[face.Material]; ok && mat != nil {
				color = materialColor(mat)
				if mat.MapKd != "" && !seenTex[mat.MapKd] {
					seenTex[mat.MapKd] = true
					out.Textures = append(out.Textures, mat.MapKd)
				}
			}

			for k := 1; k+1 < len(face.Vertices); k++ {
				for _, c := range [3]int{0, k, k + 1} {
					vi := face.Vertices[c]
					if vi < 0 || vi >= nv {
						return nil, fmt.Errorf("%w: object %d face %d uses vertex %d of %d",
							ErrOBJIndexRange, oi, fi, vi+1, nv)
					}
					d.Positions = append(d.Positions, mgl32.Vec3{
						dec.Vertices[vi*3], dec.Vertices[vi*3+1], dec.Vertices[vi*3+2],
					})
					d.Colors = append(d.Colors, color)

					var n mgl32.Vec3
					if c < len(face.Normals) {
						if ni := face.Normals[c]; ni >= 0 && ni < nn {
							n = mgl32.Vec3{dec.Normals[ni*3], dec.Normals[ni*3+1], dec.Normals[ni*3+2]}
						}
					}
					d.Normals = append(d.Normals, n)

					if hasUV {
						var uv mgl32.Vec2
						if c < len(face.Uvs) {
							if ti := face.Uvs[c]; ti >= 0 && ti < nt {
								uv = mgl32.Vec2{dec.Uvs[ti*2], dec.Uvs[ti*2+1]}
							}
						}
						d.TexCoords = append(d.TexCoords, uv)
					}
				}
			}
		}
	}

	if d.Len() == 0 {
		return nil, ErrOBJEmpty
	}
	return out, nil
}

func materialColor(m *obj.Material) mgl32.Vec3 {
	if m.Ambient.R != 0 || m.Ambient.G != 0 || m.Ambient.B != 0 {
		return mgl32.Vec3{m.Ambient.R, m.Ambient.G, m.Ambient.B}
	}
	if m.Diffuse.R != 0 || m.Diffuse.G != 0 || m.Diffuse.B != 0 {
		return mgl32.Vec3{m.Diffuse.R, m.Diffuse.G, m.Diffuse.B}
	}
	return mgl32.Vec3{1, 1, 1}
}
