package game

import (
	"time"

	"github.com/Faultbox/launchpad/internal/config"
	"github.com/Faultbox/launchpad/internal/engine/camera"
	"github.com/Faultbox/launchpad/internal/engine/renderer"
	"github.com/Faultbox/launchpad/internal/scene"
)

// Effect is a side effect the host must perform after an action.
type Effect uint8

const (
	EffectQuit Effect = 1 << iota
	EffectReloadShaders
	EffectScreenshot
	EffectMouseCapture
	EffectWireframe
	EffectLaunchSound
	EffectStopEngine
)

// Has reports whether e includes f.
func (e Effect) Has(f Effect) bool {
	return e&f != 0
}

// Selection identifies one drawn instance of a model.
type Selection struct {
	Model    int
	Instance int
}

// State is everything the viewer mutates between frames.
type State struct {
	Camera  *camera.OrbitCamera
	Vehicle *scene.Vehicle

	Wireframe  bool
	ShowBounds bool
	Running    bool

	// Selected is the picked model instance, highlighted with its bounds.
	Selected    Selection
	HasSelected bool

	Frames uint64
	Stats  *renderer.FrameStats
}

// NewState builds the initial state from configuration.
func NewState(cfg *config.Config) *State {
	cam := camera.NewOrbitCamera()
	cam.Radius = cfg.Camera.Radius
	cam.MaxRadius = cfg.Camera.MaxRadius
	cam.MoveSpeed = cfg.Camera.MoveSpeed
	cam.MouseSensitivity = cfg.Camera.MouseSensitivity

	a := cfg.Animation
	return &State{
		Camera: cam,
		Vehicle: scene.NewVehicle(scene.FlightParams{
			LiftOffHeight: a.LiftOffHeight,
			CurveRadius:   a.CurveRadius,
			CurveDuration: a.CurveDuration,
			Acceleration:  a.Acceleration,
			TickRate:      a.TickRate,
		}),
		Wireframe: cfg.Graphics.Wireframe,
		Running:   true,
		Stats:     renderer.NewFrameStats(time.Second),
	}
}

// Apply performs a on the state and returns what the host must do.
func (s *State) Apply(a Action) Effect {
	switch a {
	case ActionQuit:
		s.Running = false
		return EffectQuit
	case ActionLaunch:
		s.Vehicle.Launch()
		return EffectLaunchSound
	case ActionReset:
		s.Vehicle.Reset()
		s.HasSelected = false
		return EffectReloadShaders | EffectStopEngine
	case ActionToggleCamera:
		s.Camera.Toggle()
		return EffectMouseCapture
	case ActionToggleWireframe:
		s.Wireframe = !s.Wireframe
		return EffectWireframe
	case ActionToggleBounds:
		s.ShowBounds = !s.ShowBounds
	case ActionScreenshot:
		return EffectScreenshot
	}
	return 0
}

// Select records a pick result; ok false clears the selection.
func (s *State) Select(sel Selection, ok bool) {
	s.Selected = sel
	s.HasSelected = ok
}
