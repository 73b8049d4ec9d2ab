// Mesh Browser - an interactive inspector for procedural and loaded meshes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/launchpad/internal/engine/debug"
	"github.com/Faultbox/launchpad/internal/engine/framebuffer"
	"github.com/Faultbox/launchpad/internal/engine/ui"
	"github.com/Faultbox/launchpad/internal/logger"
)

const (
	windowTitle   = "Mesh Browser"
	previewSize   = 768
	notifyTimeout = 2 * time.Second
)

func main() {
	runtime.LockOSThread()

	meshPath := flag.String("mesh", "", "Mesh file (.obj or .mesh) to open")
	shotDir := flag.String("screenshots", "screenshots", "Screenshot directory")
	debugLog := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := "info"
	if *debugLog {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app, err := NewApp(*shotDir)
	if err != nil {
		logger.Error("failed to start mesh browser", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer app.Close()

	if *meshPath != "" {
		app.src.File = *meshPath
	}
	app.Run()
}

// App is the mesh browser state.
type App struct {
	backend *ui.Backend
	log     *zap.Logger
	preview *Preview

	src      Source
	built    Source // source of the mesh currently in the preview
	hasBuilt bool
	stats    Stats
	buildErr error

	// Paths chosen in the file dialog goroutine, consumed on the main thread.
	opened chan string

	screenshots         *debug.ScreenshotCapture
	screenshotRequested bool
	notifyMsg           string
	notifyTime          time.Time

	lastMousePos imgui.Vec2
}

// NewApp creates the window and the offscreen preview.
func NewApp(screenshotDir string) (*App, error) {
	app := &App{
		log:         logger.Named("meshbrowser"),
		src:         DefaultSource(),
		opened:      make(chan string, 1),
		screenshots: debug.NewScreenshotCapture(screenshotDir, "meshbrowser"),
	}

	var err error
	app.backend, err = ui.NewBackend(windowTitle, 1280, 800)
	if err != nil {
		return nil, err
	}

	app.preview, err = NewPreview(previewSize, previewSize)
	if err != nil {
		return nil, fmt.Errorf("creating preview: %w", err)
	}
	return app, nil
}

// Close releases GL resources.
func (app *App) Close() {
	if app.preview != nil {
		app.preview.Destroy()
		app.preview = nil
	}
}

// Run starts the main loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// openFileDialog asks for a mesh file without blocking the UI. SDL window
// calls must stay on the main thread, so the result is handed over
// through a channel.
func (app *App) openFileDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Meshes", "obj", "mesh", "bin").
			Filter("All Files", "*").
			Title("Open Mesh").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				app.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case app.opened <- filename:
		default:
		}
	}()
}

func (app *App) notify(msg string) {
	app.notifyMsg = msg
	app.notifyTime = time.Now()
}

// rebuild regenerates the mesh when the source changed.
func (app *App) rebuild() {
	if app.hasBuilt && app.src == app.built {
		return
	}
	refit := !app.hasBuilt || app.src.Generator != app.built.Generator || app.src.File != app.built.File
	app.built = app.src
	app.hasBuilt = true

	d, err := app.src.Build()
	app.buildErr = err
	if err != nil {
		app.log.Warn("mesh build failed", zap.Error(err))
		app.stats = Stats{}
		_ = app.preview.SetMesh(d, false)
		return
	}
	app.stats = ComputeStats(d)
	if err := app.preview.SetMesh(d, refit); err != nil {
		app.buildErr = err
		app.log.Warn("mesh upload failed", zap.Error(err))
		return
	}
	app.log.Debug("mesh rebuilt",
		zap.Stringer("generator", app.src.Generator),
		zap.String("file", app.src.File),
		zap.Int("vertices", app.stats.Vertices),
	)
}

// captureScreenshot saves the last presented frame.
func (app *App) captureScreenshot() {
	w, h := ui.FramebufferSize()
	if w <= 0 || h <= 0 {
		app.notify("Screenshot failed: invalid viewport")
		return
	}
	path, err := app.screenshots.Capture(framebuffer.ReadFront(w, h))
	if err != nil {
		app.log.Error("screenshot failed", zap.Error(err))
		app.notify("Screenshot failed")
		return
	}
	app.log.Info("screenshot saved", zap.String("path", path))
	app.notify("Saved: " + path)
}

// render is called each frame to draw the UI.
func (app *App) render() {
	// Captured at frame start so the front buffer holds a complete frame.
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}

	select {
	case path := <-app.opened:
		app.src.File = path
		app.backend.SetWindowTitle(fmt.Sprintf("%s - %s", windowTitle, filepath.Base(path)))
	default:
	}

	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}

	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open Mesh...") {
				app.openFileDialog()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				os.Exit(0)
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}

	app.rebuild()

	workPos, workSize := ui.Viewport()
	leftWidth := float32(300)
	rightWidth := float32(240)
	previewWidth := workSize.X - leftWidth - rightWidth

	if ui.FixedPanel("Mesh", workPos, imgui.NewVec2(leftWidth, workSize.Y)) {
		app.renderSourcePanel()
	}
	imgui.End()

	if ui.FixedPanel("Preview", imgui.NewVec2(workPos.X+leftWidth, workPos.Y), imgui.NewVec2(previewWidth, workSize.Y)) {
		app.renderPreview()
	}
	imgui.End()

	if ui.FixedPanel("Stats", imgui.NewVec2(workPos.X+leftWidth+previewWidth, workPos.Y), imgui.NewVec2(rightWidth, workSize.Y)) {
		app.renderStats()
	}
	imgui.End()

	if app.notifyMsg != "" && time.Since(app.notifyTime) < notifyTimeout {
		flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
			imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
			imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
		imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+10, workPos.Y+10))
		imgui.SetNextWindowBgAlpha(0.85)
		if imgui.BeginV("##Notify", nil, flags) {
			imgui.Text(app.notifyMsg)
		}
		imgui.End()
	}
}
