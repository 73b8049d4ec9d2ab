// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Animation AnimationConfig `yaml:"animation"`
	Lighting  LightingConfig  `yaml:"lighting"`
	Audio     AudioConfig     `yaml:"audio"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [3]float32 `yaml:"clear_color"`
	Wireframe  bool       `yaml:"wireframe"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Radius           float32 `yaml:"radius"`
	MaxRadius        float32 `yaml:"max_radius"`
	MoveSpeed        float32 `yaml:"move_speed"`        // units (or radians) per second
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // radians per pixel
}

// SceneConfig holds the asset names that make up the launch site.
type SceneConfig struct {
	AssetDirs      []string `yaml:"asset_dirs"`
	TerrainOBJ     string   `yaml:"terrain_obj"`
	TerrainTexture string   `yaml:"terrain_texture"`
	LandingPadOBJ  string   `yaml:"landing_pad_obj"`
	CustomMesh     string   `yaml:"custom_mesh"` // optional binary mesh
	ShipDetail     int      `yaml:"ship_detail"` // subdivisions of the ship's round parts
}

// AnimationConfig holds vehicle flight parameters.
type AnimationConfig struct {
	LiftOffHeight float32 `yaml:"lift_off_height"`
	CurveRadius   float32 `yaml:"curve_radius"`
	CurveDuration float32 `yaml:"curve_duration"` // seconds
	Acceleration  float32 `yaml:"acceleration"`   // speed gain per tick
	TickRate      int     `yaml:"tick_rate"`      // ticks per second
}

// PointLightConfig describes one light carried by the vehicle.
type PointLightConfig struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// LightingConfig holds scene lighting.
type LightingConfig struct {
	Direction   [3]float32         `yaml:"direction"`
	Diffuse     float32            `yaml:"diffuse"`
	Ambient     float32            `yaml:"ambient"`
	PointLights []PointLightConfig `yaml:"point_lights"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	EngineVolume float32 `yaml:"engine_volume"`
	Muted        bool    `yaml:"muted"`
	LaunchSound  string  `yaml:"launch_sound"`
	EngineSound  string  `yaml:"engine_sound"`
}

// SnapshotConfig holds headless render settings.
type SnapshotConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"`
	Format      string `yaml:"format"` // webp or png
	OutputDir   string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Validation errors.
var (
	ErrWindowSize   = errors.New("window size must be positive")
	ErrProjection   = errors.New("projection requires 0 < fov < 180 and 0 < near < far")
	ErrShipDetail   = errors.New("ship detail must be at least 1")
	ErrSnapshotSize = errors.New("snapshot size and supersample must be positive")
	ErrTickRate     = errors.New("tick rate must be positive")
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOVDegrees: 60,
			Near:       0.1,
			Far:        100,
			ClearColor: [3]float32{0.2, 0.2, 0.2},
		},
		Camera: CameraConfig{
			Radius:           10,
			MaxRadius:        4242.6,
			MoveSpeed:        5,
			MouseSensitivity: 0.01,
		},
		Scene: SceneConfig{
			AssetDirs:      []string{"assets"},
			TerrainOBJ:     "parlahti.obj",
			TerrainTexture: "L4343A-4k.jpeg",
			LandingPadOBJ:  "landingpad.obj",
			ShipDetail:     128,
		},
		Animation: AnimationConfig{
			LiftOffHeight: 5,
			CurveRadius:   5,
			CurveDuration: 5,
			Acceleration:  0.001,
			TickRate:      60,
		},
		Lighting: LightingConfig{
			Direction: [3]float32{-1, 1, 0.5},
			Diffuse:   0.9,
			Ambient:   0.05,
			PointLights: []PointLightConfig{
				{Position: [3]float32{4, 18, 0}, Color: [3]float32{1, 0, 0}},
				{Position: [3]float32{0, 22, 0}, Color: [3]float32{0, 0, 1}},
				{Position: [3]float32{0, 1, 4}, Color: [3]float32{0, 1, 0}},
			},
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			EngineVolume: 0.6,
			Muted:        false,
			LaunchSound:  "sounds/launch.wav",
			EngineSound:  "sounds/engine.wav",
		},
		Snapshot: SnapshotConfig{
			Width:       512,
			Height:      512,
			Supersample: 2,
			Format:      "webp",
			OutputDir:   "snapshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that would make the viewer unusable.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrWindowSize, g.Width, g.Height)
	}
	if g.FOVDegrees <= 0 || g.FOVDegrees >= 180 || g.Near <= 0 || g.Far <= g.Near {
		return fmt.Errorf("%w: fov=%g near=%g far=%g", ErrProjection, g.FOVDegrees, g.Near, g.Far)
	}
	if c.Scene.ShipDetail < 1 {
		return fmt.Errorf("%w: got %d", ErrShipDetail, c.Scene.ShipDetail)
	}
	if c.Animation.TickRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrTickRate, c.Animation.TickRate)
	}
	s := c.Snapshot
	if s.Width <= 0 || s.Height <= 0 || s.Supersample < 1 {
		return fmt.Errorf("%w: %dx%d x%d", ErrSnapshotSize, s.Width, s.Height, s.Supersample)
	}
	return nil
}
