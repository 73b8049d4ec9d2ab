package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/launchpad/pkg/mesh"
)

// Light is the flat shading model: a double-sided directional term plus ambient.
type Light struct {
	Direction mgl32.Vec3 // towards the light, world space
	Diffuse   float32
	Ambient   float32
}

// DefaultLight matches the viewer's sun.
func DefaultLight() Light {
	return Light{
		Direction: mgl32.Vec3{-1, 1, 0.5}.Normalize(),
		Diffuse:   0.9,
		Ambient:   0.05,
	}
}

// Shade returns the lighting scalar for a face normal.
func (l Light) Shade(normal mgl32.Vec3) float32 {
	ndl := normal.Dot(l.Direction)
	if ndl < 0 {
		ndl = -ndl
	}
	return l.Ambient + l.Diffuse*ndl
}

// Stats counts what happened to the triangles of one draw.
type Stats struct {
	Triangles int
	Culled    int // behind the camera or degenerate
}

// DrawMesh projects d through projView·model and rasterizes it into fb.
// Triangles with any vertex behind the eye are skipped; there is no clipping.
func DrawMesh(fb *FrameBuffer, d mesh.Data, model, projView mgl32.Mat4, light Light) Stats {
	mvp := projView.Mul4(model)
	w, h := float32(fb.Width), float32(fb.Height)

	var st Stats
	for i := 0; i+2 < len(d.Positions); i += 3 {
		st.Triangles++

		var sv [3]ScreenVertex
		var world [3]mgl32.Vec3
		visible := true
		for k := 0; k < 3; k++ {
			p := d.Positions[i+k]
			clip := mvp.Mul4x1(p.Vec4(1))
			if clip.W() <= 1e-6 {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / clip.W())
			sv[k] = ScreenVertex{
				Pos:   mgl32.Vec3{(ndc.X() + 1) * 0.5 * w, (1 - ndc.Y()) * 0.5 * h, ndc.Z()},
				Color: d.Colors[i+k],
			}
			world[k] = model.Mul4x1(p.Vec4(1)).Vec3()
		}
		if !visible {
			st.Culled++
			continue
		}

		n := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		if n.Len() < 1e-12 {
			st.Culled++
			continue
		}
		RasterizeTriangle(fb, sv, light.Shade(n.Normalize()))
	}
	return st
}

// View describes a snapshot camera orbiting the mesh bounds.
type View struct {
	Size        int
	Supersample int
	Yaw         float32 // radians around +Y
	Pitch       float32 // radians above the horizon
	FOVDegrees  float32
	Background  [4]uint8
	Light       Light
}

// DefaultView is a three-quarter view with a transparent background.
func DefaultView(size, supersample int) View {
	return View{
		Size:        size,
		Supersample: supersample,
		Yaw:         mgl32.DegToRad(35),
		Pitch:       mgl32.DegToRad(25),
		FOVDegrees:  45,
		Light:       DefaultLight(),
	}
}

// Camera returns the projection·view matrix that frames b.
func (v View) Camera(b mesh.Bounds) mgl32.Mat4 {
	center := b.Center()
	radius := b.Size().Len() / 2
	if radius < 1e-4 {
		radius = 1
	}
	fov := mgl32.DegToRad(v.FOVDegrees)
	dist := radius / sinf(fov/2) * 1.1

	dir := mgl32.Vec3{
		cosf(v.Pitch) * sinf(v.Yaw),
		sinf(v.Pitch),
		cosf(v.Pitch) * cosf(v.Yaw),
	}
	eye := center.Add(dir.Mul(dist))
	view := mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(fov, 1, dist*0.01, dist+radius*2)
	return proj.Mul4(view)
}

// Snapshot renders d at Size×Supersample and downsamples to Size.
func Snapshot(d mesh.Data, v View) *image.NRGBA {
	ss := v.Supersample
	if ss < 1 {
		ss = 1
	}
	fb := NewFrameBuffer(v.Size*ss, v.Size*ss)
	bg := v.Background
	fb.Clear(bg[0], bg[1], bg[2], bg[3])
	if d.Len() > 0 {
		DrawMesh(fb, d, mgl32.Ident4(), v.Camera(d.Bounds()), v.Light)
	}
	return Downsample(fb.Image(), v.Size)
}
