package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

// Attribute describes one vertex stream bound at a fixed shader location.
type Attribute struct {
	Name       string
	Location   uint32
	Components int32
}

// Attributes is the vertex layout shared by every mesh shader: one buffer
// per attribute, locations 0..3.
var Attributes = [4]Attribute{
	{Name: "position", Location: 0, Components: mesh.PositionSize},
	{Name: "color", Location: 1, Components: mesh.ColorSize},
	{Name: "normal", Location: 2, Components: mesh.NormalSize},
	{Name: "texcoord", Location: 3, Components: mesh.TexCoordSize},
}

// AttributeStreams flattens d into one float slice per entry of Attributes.
// Texcoords are zero-filled when the record has none so the shader always
// reads a defined value.
func AttributeStreams(d mesh.Data) [4][]float32 {
	var s [4][]float32
	s[0] = flattenVec3(d.Positions)
	s[1] = flattenVec3(d.Colors)
	s[2] = flattenVec3(d.Normals)
	if d.HasTexCoords() {
		s[3] = flattenVec2(d.TexCoords)
	} else {
		s[3] = make([]float32, len(d.Positions)*mesh.TexCoordSize)
	}
	return s
}

func flattenVec3(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

func flattenVec2(vs []mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(vs)*2)
	for _, v := range vs {
		out = append(out, v[0], v[1])
	}
	return out
}
