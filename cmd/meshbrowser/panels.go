package main

import (
	"fmt"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/imgui"
)

// renderSourcePanel draws the generator picker and its settings.
func (app *App) renderSourcePanel() {
	src := &app.src

	imgui.Text("Generator:")
	for i, name := range generatorNames {
		g := Generator(i)
		selected := src.File == "" && src.Generator == g
		if imgui.SelectableBoolV(name, selected, 0, imgui.NewVec2(0, 0)) {
			src.Generator = g
			src.File = ""
			app.backend.SetWindowTitle(windowTitle)
		}
	}

	imgui.Spacing()
	if imgui.ButtonV("Open Mesh...", imgui.NewVec2(-1, 0)) {
		app.openFileDialog()
	}
	if src.File != "" {
		imgui.TextWrapped(filepath.Base(src.File))
		if imgui.Button("Close File") {
			src.File = ""
			app.backend.SetWindowTitle(windowTitle)
		}
	}

	imgui.Separator()

	fromFile := src.File != ""
	if fromFile {
		imgui.BeginDisabledV(true)
	}
	imgui.SetNextItemWidth(-1)
	imgui.SliderIntV("##Subdivisions", &src.Subdivisions, 1, 128, "Subdivisions: %d", imgui.SliderFlagsNone)
	imgui.Checkbox("Capped", &src.Capped)

	imgui.Text("Color:")
	for i, label := range []string{"##R", "##G", "##B"} {
		imgui.SetNextItemWidth(-1)
		imgui.SliderFloatV(label, &src.Color[i], 0, 1, [...]string{"R %.2f", "G %.2f", "B %.2f"}[i], imgui.SliderFlagsNone)
	}
	if fromFile {
		imgui.EndDisabled()
	}

	imgui.Separator()
	imgui.Text("Pre-transform:")
	for i, axis := range []string{"X", "Y", "Z"} {
		imgui.SetNextItemWidth(-1)
		imgui.SliderFloatV("##Scale"+axis, &src.Scale[i], 0.1, 5, "Scale "+axis+" %.2f", imgui.SliderFlagsNone)
	}
	for i, axis := range []string{"X", "Y", "Z"} {
		imgui.SetNextItemWidth(-1)
		imgui.SliderFloatV("##Rot"+axis, &src.RotationDeg[i], -180, 180, "Rotate "+axis+" %.0f deg", imgui.SliderFlagsNone)
	}

	imgui.Spacing()
	if imgui.ButtonV("Reset", imgui.NewVec2(-1, 0)) {
		file := src.File
		*src = DefaultSource()
		src.File = file
	}
}

// renderPreview shows the offscreen render with drag-to-orbit and wheel
// zoom.
func (app *App) renderPreview() {
	p := app.preview
	imgui.Checkbox("Wireframe", &p.Wireframe)
	imgui.SameLine()
	if imgui.Button("Fit View") {
		b := app.stats.Bounds
		p.Camera.FitToBounds(b.Min, b.Max)
	}
	imgui.SameLine()
	imgui.TextDisabled("(Drag to orbit, scroll to zoom, F12 screenshot)")

	textureID := p.Render()

	w, h := p.Size()
	avail := imgui.ContentRegionAvail()
	size := min(avail.X, avail.Y)
	if size <= 0 {
		return
	}
	aspect := float32(w) / float32(h)

	startX := imgui.CursorPosX()
	if size < avail.X {
		imgui.SetCursorPosX(startX + (avail.X-size)/2)
	}

	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(size*aspect, size),
		imgui.NewVec2(0, 1), // GL textures are bottom-up
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.15, 0.15, 0.15, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if imgui.IsItemHovered() {
		mousePos := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			p.Camera.HandleMouse(mousePos.X-app.lastMousePos.X, mousePos.Y-app.lastMousePos.Y)
		}
		app.lastMousePos = mousePos

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			p.Camera.HandleZoom(wheel)
		}
	}
}

// renderStats shows counts, bounds and validation of the current mesh.
func (app *App) renderStats() {
	if app.buildErr != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), "Build failed:")
		imgui.TextWrapped(app.buildErr.Error())
		return
	}

	s := app.stats
	imgui.Text(fmt.Sprintf("Vertices:  %d", s.Vertices))
	imgui.Text(fmt.Sprintf("Triangles: %d", s.Triangles))
	imgui.Text(fmt.Sprintf("TexCoords: %v", s.TexCoords))

	imgui.Spacing()
	imgui.Separator()

	b := s.Bounds
	size := b.Size()
	imgui.Text("Bounds:")
	imgui.Text(fmt.Sprintf("  Min: (%.2f, %.2f, %.2f)", b.Min[0], b.Min[1], b.Min[2]))
	imgui.Text(fmt.Sprintf("  Max: (%.2f, %.2f, %.2f)", b.Max[0], b.Max[1], b.Max[2]))
	imgui.Text(fmt.Sprintf("  Size: (%.2f, %.2f, %.2f)", size[0], size[1], size[2]))

	imgui.Spacing()
	imgui.Separator()

	if s.Invalid != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.8, 0, 1), "Invalid:")
		imgui.TextWrapped(s.Invalid.Error())
	} else {
		imgui.TextColored(imgui.NewVec4(0.4, 0.8, 0.4, 1), "Valid")
	}

	imgui.Spacing()
	imgui.Separator()
	cam := app.preview.Camera
	imgui.Text("Camera:")
	imgui.Text(fmt.Sprintf("  Radius: %.2f", cam.Radius))
	imgui.Text(fmt.Sprintf("  Phi: %.2f  Theta: %.2f", cam.Phi, cam.Theta))
}
