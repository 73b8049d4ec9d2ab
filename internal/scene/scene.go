// Package scene assembles the launch site: terrain, landing pads, the
// procedurally built spaceship and its flight animation.
package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/launchpad/internal/assets"
	"github.com/Faultbox/launchpad/internal/config"
	"github.com/Faultbox/launchpad/pkg/formats"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

// Model is CPU-side geometry with an optional diffuse texture path.
type Model struct {
	Name    string
	Mesh    mesh.Data
	Texture string // resolved path, empty when untextured
}

// Scene holds everything the viewer draws, before GPU upload.
type Scene struct {
	Terrain *Model
	Pad     *Model
	Ship    *Model
	Custom  *Model

	PadModels []mgl32.Mat4
}

// Load builds the scene from cfg. Terrain and landing pad are loaded when
// named; a missing named file is an error. A missing texture only logs a
// warning and the model is drawn untextured.
func Load(cfg config.SceneConfig, am *assets.Manager, log *zap.Logger) (*Scene, error) {
	s := &Scene{PadModels: PadModels()}

	if cfg.TerrainOBJ != "" {
		m, err := loadOBJModel("terrain", cfg.TerrainOBJ, cfg.TerrainTexture, am, log)
		if err != nil {
			return nil, fmt.Errorf("loading terrain: %w", err)
		}
		s.Terrain = m
	}

	if cfg.LandingPadOBJ != "" {
		m, err := loadOBJModel("landing pad", cfg.LandingPadOBJ, "", am, log)
		if err != nil {
			return nil, fmt.Errorf("loading landing pad: %w", err)
		}
		s.Pad = m
	}

	s.Ship = &Model{Name: "ship", Mesh: BuildShip(cfg.ShipDetail)}
	log.Info("ship built",
		zap.Int("detail", cfg.ShipDetail),
		zap.Int("vertices", s.Ship.Mesh.Len()),
	)

	if cfg.CustomMesh != "" {
		path, err := am.Resolve(cfg.CustomMesh)
		if err != nil {
			return nil, fmt.Errorf("loading custom mesh: %w", err)
		}
		d, err := formats.LoadMesh(path)
		if err != nil {
			return nil, fmt.Errorf("loading custom mesh: %w", err)
		}
		s.Custom = &Model{Name: "custom", Mesh: d}
		log.Info("custom mesh loaded", zap.String("path", path), zap.Int("vertices", d.Len()))
	}

	return s, nil
}

// Models returns the loaded models in draw order.
func (s *Scene) Models() []*Model {
	var out []*Model
	for _, m := range []*Model{s.Terrain, s.Pad, s.Ship, s.Custom} {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

func loadOBJModel(name, objName, textureName string, am *assets.Manager, log *zap.Logger) (*Model, error) {
	path, err := am.Resolve(objName)
	if err != nil {
		return nil, err
	}
	o, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range o.Warnings {
		log.Debug("OBJ warning", zap.String("model", name), zap.String("warning", w))
	}

	m := &Model{Name: name, Mesh: o.Mesh}
	switch {
	case textureName != "":
		tex, err := am.Resolve(textureName)
		if err != nil {
			if !errors.Is(err, assets.ErrNotFound) {
				return nil, err
			}
			log.Warn("texture not found, drawing untextured",
				zap.String("model", name), zap.String("texture", textureName))
		}
		m.Texture = tex
	case len(o.Textures) > 0:
		m.Texture = o.Textures[0]
	}

	log.Info("model loaded",
		zap.String("model", name),
		zap.String("path", path),
		zap.Int("vertices", o.Mesh.Len()),
		zap.Bool("texcoords", o.Mesh.HasTexCoords()),
		zap.String("texture", m.Texture),
	)
	return m, nil
}
