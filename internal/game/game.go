// Package game runs the interactive launch site viewer.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/launchpad/internal/assets"
	"github.com/Faultbox/launchpad/internal/config"
	"github.com/Faultbox/launchpad/internal/engine/audio"
	"github.com/Faultbox/launchpad/internal/engine/debug"
	"github.com/Faultbox/launchpad/internal/engine/input"
	"github.com/Faultbox/launchpad/internal/engine/lighting"
	"github.com/Faultbox/launchpad/internal/engine/renderer"
	"github.com/Faultbox/launchpad/internal/engine/shader"
	"github.com/Faultbox/launchpad/internal/engine/texture"
	"github.com/Faultbox/launchpad/internal/engine/window"
	"github.com/Faultbox/launchpad/internal/logger"
	"github.com/Faultbox/launchpad/internal/scene"
	"github.com/Faultbox/launchpad/internal/shaders"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Launchpad"

// drawable is a model uploaded to the GPU.
type drawable struct {
	name    string
	mesh    *renderer.GPUMesh
	texture *texture.Texture
	bounds  mesh.Bounds
	ship    bool // follows the vehicle transform
	pad     bool // drawn once per pad placement
}

// Game is the viewer instance.
type Game struct {
	config *config.Config
	log    *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings KeyBindings
	assets   *assets.Manager
	audio    *audio.Manager

	sceneProgram *shader.Program
	lineProgram  *shader.Program
	lines        *renderer.LineBuffer
	white        *texture.Texture
	drawables    []drawable
	padModels    []mgl32.Mat4
	lights       lighting.Setup

	screenshots *debug.ScreenshotCapture
	pendingShot bool // captured after the next frame is drawn
	gpuTimer    *renderer.GPUTimer

	state *State
}

// New creates the window and uploads the scene.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		config:   cfg,
		log:      log,
		bindings: DefaultBindings(),
		assets:   assets.NewManager(cfg.Scene.AssetDirs...),
		state:    NewState(cfg),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      WindowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window just created.
	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		VSync:      cfg.Graphics.VSync,
		ClearColor: mgl32.Vec3(cfg.Graphics.ClearColor),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.SetWireframe(g.state.Wireframe)

	g.input = input.New()

	if err := g.initGPU(); err != nil {
		g.Close()
		return nil, err
	}

	g.initAudio()

	g.screenshots = debug.NewScreenshotCapture(cfg.Snapshot.OutputDir, "launchpad")
	g.screenshots.SetFormat(cfg.Snapshot.Format)

	log.Info("viewer initialized", zap.Int("models", len(g.drawables)))
	return g, nil
}

func (g *Game) initGPU() error {
	var err error
	g.sceneProgram, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	g.lineProgram, err = shader.NewProgram(shaders.LinesVertexShader, shaders.LinesFragmentShader)
	if err != nil {
		return fmt.Errorf("line shader: %w", err)
	}
	g.reloadShaders()

	g.lines = renderer.NewLineBuffer()
	g.white = texture.White()
	g.gpuTimer = renderer.NewGPUTimer()
	g.lights = lighting.FromConfig(g.config.Lighting)

	sc, err := scene.Load(g.config.Scene, g.assets, g.log)
	if err != nil {
		return err
	}
	g.padModels = sc.PadModels

	for _, m := range sc.Models() {
		gm, err := renderer.UploadMesh(m.Mesh)
		if err != nil {
			return fmt.Errorf("uploading %s: %w", m.Name, err)
		}
		g.drawables = append(g.drawables, drawable{
			name:    m.Name,
			mesh:    gm,
			texture: g.loadTexture(m),
			bounds:  m.Mesh.Bounds(),
			ship:    m == sc.Ship,
			pad:     m == sc.Pad,
		})
	}
	return nil
}

// loadTexture uploads the model's texture, falling back to plain white.
func (g *Game) loadTexture(m *scene.Model) *texture.Texture {
	if m.Texture == "" {
		return g.white
	}
	img, err := texture.LoadFile(m.Texture)
	if err != nil {
		g.log.Warn("texture unavailable, drawing untextured",
			zap.String("model", m.Name), zap.Error(err))
		return g.white
	}
	return texture.Upload(img)
}

// initAudio starts sound. The viewer keeps running silently when no
// audio device is available.
func (g *Game) initAudio() {
	a := g.config.Audio
	g.audio = audio.New(audio.Settings{
		Master: float64(a.MasterVolume),
		SFX:    float64(a.SFXVolume),
		Engine: float64(a.EngineVolume),
		Muted:  a.Muted,
	})
	if err := g.audio.Init(); err != nil {
		g.log.Warn("audio disabled", zap.Error(err))
	}
}

// reloadShaders swaps in on-disk shader overrides when present. Failure
// keeps the current programs.
func (g *Game) reloadShaders() {
	vs, err := g.assets.Resolve("shaders/" + shaders.SceneVertexFile)
	if err != nil {
		g.log.Debug("no shader overrides on disk", zap.Error(err))
		return
	}
	fs, err := g.assets.Resolve("shaders/" + shaders.SceneFragmentFile)
	if err != nil {
		g.log.Debug("no shader overrides on disk", zap.Error(err))
		return
	}
	if err := g.sceneProgram.Reload(vs, fs); err != nil {
		g.log.Warn("shader reload failed, keeping previous program", zap.Error(err))
		return
	}
	g.log.Info("shaders reloaded", zap.String("vertex", vs), zap.String("fragment", fs))
}

// Run is the main loop. It returns when the window closes or Esc is
// pressed.
func (g *Game) Run() error {
	lastTime := time.Now()
	g.log.Info("starting main loop")

	for g.state.Running {
		now := time.Now()
		frame := now.Sub(lastTime)
		lastTime = now
		dt := frame.Seconds()

		if g.input.Update() {
			g.state.Running = false
			break
		}
		g.handleEvents()
		if !g.state.Running {
			break
		}

		g.update(dt)

		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.window.SwapBuffers()

		g.state.Frames++
		if r, ok := g.state.Stats.Add(now, frame); ok {
			g.log.Debug("frame timing",
				zap.Int("frames", r.Frames),
				zap.Float64("fps", r.FPS),
				zap.Float64("avg_ms", r.AvgMS),
				zap.Float64("max_ms", r.MaxMS),
				zap.Duration("gpu", g.gpuTimer.Last()),
			)
		}
	}
	return nil
}

func (g *Game) handleEvents() {
	events := g.input.Events()
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			w, h := g.window.DrawableSize()
			g.renderer.Resize(w, h)
		case input.EventMouseWheel:
			g.state.Camera.HandleZoom(e.Wheel)
		case input.EventMouseDown:
			// A captured mouse steers the camera instead.
			if e.Button == sdl.BUTTON_LEFT && !g.state.Camera.Active {
				g.pick(e.MouseX, e.MouseY)
			}
		}
	}

	dx, dy := g.input.MouseDelta()
	g.state.Camera.HandleMouse(float32(dx), float32(dy))

	for _, a := range g.bindings.Actions(events) {
		g.log.Debug("action", zap.Stringer("action", a))
		g.perform(g.state.Apply(a))
	}
}

func (g *Game) perform(e Effect) {
	if e.Has(EffectQuit) {
		return
	}
	if e.Has(EffectReloadShaders) {
		g.reloadShaders()
	}
	if e.Has(EffectStopEngine) {
		g.audio.StopEngine()
	}
	if e.Has(EffectMouseCapture) {
		g.window.SetMouseCaptured(g.state.Camera.Active)
	}
	if e.Has(EffectWireframe) {
		g.renderer.SetWireframe(g.state.Wireframe)
	}
	if e.Has(EffectLaunchSound) {
		g.playLaunch()
	}
	if e.Has(EffectScreenshot) {
		g.pendingShot = true
	}
}

func (g *Game) playLaunch() {
	a := g.config.Audio
	if err := g.playSound(a.LaunchSound, g.audio.PlaySFX); err != nil {
		g.log.Warn("launch sound", zap.Error(err))
	}
	if g.audio.IsEnginePlaying() {
		return
	}
	if err := g.playSound(a.EngineSound, g.audio.PlayEngine); err != nil {
		g.log.Warn("engine sound", zap.Error(err))
	}
}

func (g *Game) playSound(name string, play func([]byte) error) error {
	if name == "" {
		return nil
	}
	data, err := g.assets.Load(name)
	if err != nil {
		return err
	}
	if err := play(data); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
		return err
	}
	return nil
}

func (g *Game) update(dt float64) {
	g.state.Camera.Update(CameraControls(g.input), float32(dt))

	v := g.state.Vehicle
	before := v.Phase
	v.Update(dt)
	if v.Phase != before {
		g.log.Info("vehicle phase",
			zap.Stringer("from", before),
			zap.Stringer("to", v.Phase),
			zap.Float32("speed", v.Speed),
		)
	}
	g.audio.SetThrottle(v.Throttle())
}

// Close releases GPU, audio and window resources.
func (g *Game) Close() {
	g.log.Info("closing viewer")

	for _, d := range g.drawables {
		d.mesh.Delete()
		if d.texture != g.white {
			d.texture.Delete()
		}
	}
	g.drawables = nil
	if g.white != nil {
		g.white.Delete()
	}
	if g.lines != nil {
		g.lines.Delete()
	}
	if g.gpuTimer != nil {
		g.gpuTimer.Delete()
	}
	if g.sceneProgram != nil {
		g.sceneProgram.Delete()
	}
	if g.lineProgram != nil {
		g.lineProgram.Delete()
	}
	if g.audio != nil {
		g.audio.Close()
	}
	g.assets.Close()
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
