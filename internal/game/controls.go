package game

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/launchpad/internal/engine/camera"
	"github.com/Faultbox/launchpad/internal/engine/input"
)

// Action is a one-shot command triggered by a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionLaunch
	ActionReset
	ActionToggleCamera
	ActionToggleWireframe
	ActionToggleBounds
	ActionScreenshot
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionLaunch:
		return "launch"
	case ActionReset:
		return "reset"
	case ActionToggleCamera:
		return "toggle-camera"
	case ActionToggleWireframe:
		return "toggle-wireframe"
	case ActionToggleBounds:
		return "toggle-bounds"
	case ActionScreenshot:
		return "screenshot"
	default:
		return "none"
	}
}

// KeyBindings maps key presses to actions.
type KeyBindings map[sdl.Scancode]Action

// DefaultBindings returns the viewer key map.
func DefaultBindings() KeyBindings {
	return KeyBindings{
		sdl.SCANCODE_ESCAPE: ActionQuit,
		sdl.SCANCODE_F:      ActionLaunch,
		sdl.SCANCODE_R:      ActionReset,
		sdl.SCANCODE_SPACE:  ActionToggleCamera,
		sdl.SCANCODE_F1:     ActionToggleWireframe,
		sdl.SCANCODE_F2:     ActionToggleBounds,
		sdl.SCANCODE_F12:    ActionScreenshot,
	}
}

// Actions returns the actions for the key presses in events, in order.
// Auto-repeat is ignored.
func (kb KeyBindings) Actions(events []input.Event) []Action {
	var out []Action
	for _, e := range events {
		if e.Type != input.EventKeyDown || e.Repeat {
			continue
		}
		if a, ok := kb[e.Key]; ok {
			out = append(out, a)
		}
	}
	return out
}

// KeyState reports whether a key is held.
type KeyState interface {
	IsKeyDown(sdl.Scancode) bool
}

// CameraControls reads the held camera keys: W/S zoom, A/D and E/Q turn,
// Shift speeds up and Ctrl slows down.
func CameraControls(keys KeyState) camera.Controls {
	return camera.Controls{
		ZoomIn:   keys.IsKeyDown(sdl.SCANCODE_W),
		ZoomOut:  keys.IsKeyDown(sdl.SCANCODE_S),
		Left:     keys.IsKeyDown(sdl.SCANCODE_A),
		Right:    keys.IsKeyDown(sdl.SCANCODE_D),
		LookUp:   keys.IsKeyDown(sdl.SCANCODE_E),
		LookDown: keys.IsKeyDown(sdl.SCANCODE_Q),
		Fast:     keys.IsKeyDown(sdl.SCANCODE_LSHIFT) || keys.IsKeyDown(sdl.SCANCODE_RSHIFT),
		Slow:     keys.IsKeyDown(sdl.SCANCODE_LCTRL) || keys.IsKeyDown(sdl.SCANCODE_RCTRL),
	}
}
