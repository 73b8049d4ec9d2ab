package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/launchpad/internal/config"
	"github.com/Faultbox/launchpad/internal/engine/debug"
	"github.com/Faultbox/launchpad/internal/engine/framebuffer"
	"github.com/Faultbox/launchpad/internal/engine/picking"
	lpmath "github.com/Faultbox/launchpad/pkg/math"
)

// Uniform names shared by the scene and line shaders.
const (
	uniformProjCameraWorld = "uProjCameraWorld"
	uniformModel           = "uModel"
	uniformNormalMatrix    = "uNormalMatrix"
	uniformTexture         = "uTexture"
)

// LightAnchor places the vehicle's point lights in the world.
var LightAnchor = mgl32.Translate3D(1, -0.5, -3)

var (
	boundsColor   = mgl32.Vec3{1, 1, 0}
	selectedColor = mgl32.Vec3{0, 1, 1}
	gridColor     = mgl32.Vec3{0.3, 0.3, 0.3}
)

// Projection is the perspective matrix for the configured field of view.
func Projection(g config.GraphicsConfig, aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(lpmath.Radians(g.FOVDegrees), aspect, g.Near, g.Far)
}

// instances returns the model matrices a drawable is drawn with this
// frame.
func (g *Game) instances(d drawable) []mgl32.Mat4 {
	switch {
	case d.ship:
		return []mgl32.Mat4{g.state.Vehicle.Model()}
	case d.pad:
		return g.padModels
	default:
		return []mgl32.Mat4{mgl32.Ident4()}
	}
}

// projView is the camera matrix for the current viewport.
func (g *Game) projView() mgl32.Mat4 {
	return Projection(g.config.Graphics, g.renderer.Aspect()).Mul4(g.state.Camera.ViewMatrix())
}

// pick selects the model instance under a window-space point.
func (g *Game) pick(x, y int) {
	var (
		targets []picking.Target
		sels    []Selection
	)
	for di, d := range g.drawables {
		for ii, model := range g.instances(d) {
			targets = append(targets, picking.Target{ID: len(sels), Bounds: picking.WorldBounds(d.bounds, model)})
			sels = append(sels, Selection{Model: di, Instance: ii})
		}
	}

	w, h := g.window.GetSize()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), g.projView().Inv())
	id, dist, ok := ray.Nearest(targets)
	if !ok {
		g.state.Select(Selection{}, false)
		return
	}
	sel := sels[id]
	g.state.Select(sel, true)
	g.log.Info("model picked",
		zap.String("model", g.drawables[sel.Model].name),
		zap.Int("instance", sel.Instance),
		zap.Float32("distance", dist),
	)
}

// render draws one frame into the back buffer.
func (g *Game) render() error {
	g.gpuTimer.Begin()
	g.renderer.Begin()

	projView := g.projView()

	p := g.sceneProgram
	p.Use()
	p.SetMat4(uniformProjCameraWorld, projView)
	p.SetInt(uniformTexture, 0)

	lights := g.lights
	lights.Points = lights.Points.Anchored(LightAnchor)
	lights.Upload(p)

	var boxes []debug.LineVertex
	for di, d := range g.drawables {
		d.texture.Bind(0)
		for ii, model := range g.instances(d) {
			p.SetMat4(uniformModel, model)
			p.SetMat3(uniformNormalMatrix, lpmath.NormalMatrix(model))
			d.mesh.Draw()

			switch {
			case g.state.HasSelected && g.state.Selected == (Selection{Model: di, Instance: ii}):
				boxes = append(boxes, debug.BoxLines(d.bounds, model, selectedColor)...)
			case g.state.ShowBounds:
				boxes = append(boxes, debug.BoxLines(d.bounds, model, boundsColor)...)
			}
		}
	}

	// Ground grid and world axes go with the bounds overlay.
	if g.state.ShowBounds {
		boxes = append(boxes, debug.GridLines(20, 1, -0.9, gridColor)...)
		boxes = append(boxes, debug.AxisLines(2)...)
	}

	if len(boxes) > 0 {
		g.lines.Update(boxes)
		g.lineProgram.Use()
		g.lineProgram.SetMat4(uniformProjCameraWorld, projView)
		g.lines.Draw()
	}

	g.renderer.End()
	g.gpuTimer.End()

	if g.pendingShot {
		g.pendingShot = false
		g.screenshot()
	}
	return nil
}

// screenshot saves the back buffer before it is swapped.
func (g *Game) screenshot() {
	w, h := g.renderer.Size()
	path, err := g.screenshots.Capture(framebuffer.ReadScreen(w, h))
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}
