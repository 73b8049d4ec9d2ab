// Package formats provides loaders for mesh file formats: the compact
// binary mesh format and Wavefront OBJ.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

// ErrUnknownFormat is returned for file extensions no loader handles.
var ErrUnknownFormat = errors.New("unknown mesh format")

// Mesh file extensions.
const (
	ExtOBJ     = ".obj"
	ExtMeshBin = ".mesh"
)

// Kind identifies a mesh file format by extension.
func Kind(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtOBJ:
		return ExtOBJ, nil
	case ExtMeshBin, ".bin":
		return ExtMeshBin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// LoadMesh loads a .obj or .mesh file into a validated record.
func LoadMesh(path string) (mesh.Data, error) {
	kind, err := Kind(path)
	if err != nil {
		return mesh.Data{}, err
	}

	var d mesh.Data
	switch kind {
	case ExtOBJ:
		o, err := ParseOBJFile(path)
		if err != nil {
			return mesh.Data{}, err
		}
		d = o.Mesh
	default:
		d, err = ParseMeshBinFile(path)
		if err != nil {
			return mesh.Data{}, err
		}
	}

	if err := d.Validate(); err != nil {
		return mesh.Data{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
