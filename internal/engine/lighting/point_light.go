package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	lpmath "github.com/Faultbox/launchpad/pkg/math"
)

// PointLight is a colored light at a position.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3 // RGB color (0-1 range)
}

// PointLightBuffer holds lights for GPU upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights held.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// AddLight adds a point light to the buffer.
// Returns false if buffer is full.
func (b *PointLightBuffer) AddLight(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxPointLights if necessary.
func (b *PointLightBuffer) SetLights(lights []PointLight) {
	b.Clear()
	if len(lights) > MaxPointLights {
		lights = lights[:MaxPointLights]
	}
	b.Lights = append(b.Lights, lights...)
}

// Anchored returns a copy of the buffer with every position carried
// through the anchor transform. Colors are unchanged.
func (b *PointLightBuffer) Anchored(anchor mgl32.Mat4) *PointLightBuffer {
	out := NewPointLightBuffer()
	for _, l := range b.Lights {
		out.Lights = append(out.Lights, PointLight{
			Position: lpmath.TransformPoint(anchor, l.Position),
			Color:    l.Color,
		})
	}
	return out
}

// Positions returns MaxPointLights positions for GPU upload. Unused slots
// are zero.
func (b *PointLightBuffer) Positions() []mgl32.Vec3 {
	result := make([]mgl32.Vec3, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Position
	}
	return result
}

// Colors returns MaxPointLights colors for GPU upload. Unused slots are
// black.
func (b *PointLightBuffer) Colors() []mgl32.Vec3 {
	result := make([]mgl32.Vec3, MaxPointLights)
	for i, light := range b.Lights {
		result[i] = light.Color
	}
	return result
}
