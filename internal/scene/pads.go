package scene

import "github.com/go-gl/mathgl/mgl32"

// PadPlacement positions one landing pad instance.
type PadPlacement struct {
	Position mgl32.Vec3
	RotY     float32 // radians
}

// Model returns T(Position)·Ry(RotY).
func (p PadPlacement) Model() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position[0], p.Position[1], p.Position[2]).
		Mul4(mgl32.HomogRotate3DY(p.RotY))
}

// PadPlacements are the two launch pads: one under the ship and one further
// back. The second angle is 45 taken as radians.
var PadPlacements = []PadPlacement{
	{Position: mgl32.Vec3{0, -0.9, 0}, RotY: 0},
	{Position: mgl32.Vec3{1, -0.9, -25}, RotY: 45},
}

// PadModels returns the model matrix of every pad instance.
func PadModels() []mgl32.Mat4 {
	ms := make([]mgl32.Mat4, len(PadPlacements))
	for i, p := range PadPlacements {
		ms[i] = p.Model()
	}
	return ms
}
