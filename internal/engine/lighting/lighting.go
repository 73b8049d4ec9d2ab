// Package lighting describes the scene lights and uploads them to the
// scene shader.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/internal/config"
	"github.com/Faultbox/launchpad/internal/shaders"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = shaders.MaxPointLights

// Uniform names in the scene shader.
const (
	UniformLightDir       = "uLightDir"
	UniformLightDiffuse   = "uLightDiffuse"
	UniformSceneAmbient   = "uSceneAmbient"
	UniformPointCount     = "uPointLightCount"
	UniformPointPositions = "uPointLightPositions"
	UniformPointColors    = "uPointLightColors"
)

// Directional is a light at infinity plus the scene ambient term.
type Directional struct {
	Direction mgl32.Vec3 // towards the light, normalized
	Diffuse   mgl32.Vec3
	Ambient   mgl32.Vec3
}

// NewDirectional normalizes dir and expands scalar intensities to gray.
func NewDirectional(dir mgl32.Vec3, diffuse, ambient float32) Directional {
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Directional{
		Direction: dir,
		Diffuse:   mgl32.Vec3{diffuse, diffuse, diffuse},
		Ambient:   mgl32.Vec3{ambient, ambient, ambient},
	}
}

// Setup is the complete lighting state for one frame.
type Setup struct {
	Sun    Directional
	Points *PointLightBuffer
}

// FromConfig builds the lighting state with point lights still in their
// local frame.
func FromConfig(cfg config.LightingConfig) Setup {
	points := NewPointLightBuffer()
	for _, pl := range cfg.PointLights {
		points.AddLight(PointLight{
			Position: mgl32.Vec3(pl.Position),
			Color:    mgl32.Vec3(pl.Color),
		})
	}
	return Setup{
		Sun:    NewDirectional(mgl32.Vec3(cfg.Direction), cfg.Diffuse, cfg.Ambient),
		Points: points,
	}
}

// UniformSetter is the subset of a shader program the lighting upload
// needs.
type UniformSetter interface {
	SetVec3(name string, v mgl32.Vec3)
	SetVec3Array(name string, vs []mgl32.Vec3)
	SetInt(name string, v int32)
}

// Upload writes the lights into the bound program.
func (s Setup) Upload(p UniformSetter) {
	p.SetVec3(UniformLightDir, s.Sun.Direction)
	p.SetVec3(UniformLightDiffuse, s.Sun.Diffuse)
	p.SetVec3(UniformSceneAmbient, s.Sun.Ambient)

	count := 0
	if s.Points != nil {
		count = s.Points.Count()
		p.SetVec3Array(UniformPointPositions, s.Points.Positions())
		p.SetVec3Array(UniformPointColors, s.Points.Colors())
	}
	p.SetInt(UniformPointCount, int32(count))
}
