package mesh

import "github.com/go-gl/mathgl/mgl32"

// Concatenate appends b's triangles after a's. The result may share a's
// backing arrays, so a must not be used afterwards; b is only read.
//
// When exactly one side carries texcoords the other side is padded with
// zero coordinates so the result keeps one texcoord per vertex.
func Concatenate(a, b Data) Data {
	uvA, uvB := a.HasTexCoords(), b.HasTexCoords()
	switch {
	case uvA && !uvB:
		a.TexCoords = append(a.TexCoords, make([]mgl32.Vec2, len(b.Positions))...)
	case !uvA && uvB:
		a.TexCoords = append(make([]mgl32.Vec2, len(a.Positions)), b.TexCoords...)
	case uvA && uvB:
		a.TexCoords = append(a.TexCoords, b.TexCoords...)
	}

	a.Positions = append(a.Positions, b.Positions...)
	a.Colors = append(a.Colors, b.Colors...)
	a.Normals = append(a.Normals, b.Normals...)
	return a
}

// ConcatenateAll folds parts left to right with Concatenate. The first part
// is consumed.
func ConcatenateAll(parts ...Data) Data {
	if len(parts) == 0 {
		return Data{}
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out = Concatenate(out, p)
	}
	return out
}
