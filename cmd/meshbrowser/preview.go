package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/internal/config"
	"github.com/Faultbox/launchpad/internal/engine/camera"
	"github.com/Faultbox/launchpad/internal/engine/framebuffer"
	"github.com/Faultbox/launchpad/internal/engine/lighting"
	"github.com/Faultbox/launchpad/internal/engine/renderer"
	"github.com/Faultbox/launchpad/internal/engine/shader"
	"github.com/Faultbox/launchpad/internal/engine/texture"
	"github.com/Faultbox/launchpad/internal/shaders"
	lpmath "github.com/Faultbox/launchpad/pkg/math"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

// Preview renders one mesh into an offscreen framebuffer with an orbit
// camera.
type Preview struct {
	fb      *framebuffer.Framebuffer
	program *shader.Program
	white   *texture.Texture
	gpu     *renderer.GPUMesh
	lights  lighting.Setup
	bounds  mesh.Bounds

	Camera    *camera.OrbitCamera
	Wireframe bool
}

// NewPreview allocates GL resources. A GL context must be current.
func NewPreview(width, height int32) (*Preview, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}
	program, err := shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		fb.Destroy()
		return nil, err
	}

	lc := config.Default().Lighting
	lc.PointLights = nil

	cam := camera.NewOrbitCamera()
	cam.Active = true

	return &Preview{
		fb:      fb,
		program: program,
		white:   texture.White(),
		lights:  lighting.FromConfig(lc),
		Camera:  cam,
	}, nil
}

// SetMesh replaces the displayed mesh. When refit is set the camera is
// moved to frame it.
func (p *Preview) SetMesh(d mesh.Data, refit bool) error {
	if p.gpu != nil {
		p.gpu.Delete()
		p.gpu = nil
	}
	if d.Len() == 0 {
		return nil
	}
	gpu, err := renderer.UploadMesh(d)
	if err != nil {
		return err
	}
	p.gpu = gpu
	p.bounds = d.Bounds()
	if refit {
		p.Camera.FitToBounds(p.bounds.Min, p.bounds.Max)
	}
	return nil
}

// Size returns the framebuffer size.
func (p *Preview) Size() (int32, int32) {
	return p.fb.Size()
}

// Render draws the mesh and returns the color texture.
func (p *Preview) Render() uint32 {
	restore := p.fb.BindWithViewport()
	defer restore()

	p.fb.Clear(0.15, 0.15, 0.2, 1)
	if p.gpu == nil {
		return p.fb.ColorTexture()
	}

	if p.Wireframe {
		renderer.SetPolygonLines(true)
		defer renderer.SetPolygonLines(false)
	}
	renderer.EnableDepth()

	w, h := p.fb.Size()
	far := p.Camera.Radius*4 + p.bounds.Size().Len()
	proj := mgl32.Perspective(lpmath.Radians(45), renderer.Aspect(int(w), int(h)), 0.01, far)
	model := mgl32.Ident4()

	p.program.Use()
	p.program.SetMat4("uProjCameraWorld", proj.Mul4(p.Camera.ViewMatrix()))
	p.program.SetMat4("uModel", model)
	p.program.SetMat3("uNormalMatrix", lpmath.NormalMatrix(model))
	p.program.SetInt("uTexture", 0)
	p.lights.Upload(p.program)
	p.white.Bind(0)
	p.gpu.Draw()

	return p.fb.ColorTexture()
}

// Destroy releases GL resources.
func (p *Preview) Destroy() {
	if p.gpu != nil {
		p.gpu.Delete()
	}
	p.white.Delete()
	p.program.Delete()
	p.fb.Destroy()
}
