// Package picking provides ray casting against model bounds.
package picking

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	lpmath "github.com/Faultbox/launchpad/pkg/math"
	"github.com/Faultbox/launchpad/pkg/mesh"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3 // normalized
}

// ScreenToRay converts window pixel coordinates to a world-space ray.
// invProjView is the inverse of the projection·view matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invProjView mgl32.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // window Y grows downwards

	near := lpmath.TransformPoint(invProjView, mgl32.Vec3{ndcX, ndcY, -1})
	far := lpmath.TransformPoint(invProjView, mgl32.Vec3{ndcX, ndcY, 1})

	dir := far.Sub(near)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: near, Direction: dir}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBounds tests the ray against an axis-aligned box with the slab
// method. It returns the entry distance, or the exit distance when the ray
// starts inside the box.
func (r Ray) IntersectBounds(b mesh.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Direction[axis]
		if d == 0 {
			if o < b.Min[axis] || o > b.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (b.Min[axis] - o) / d
		t2 := (b.Max[axis] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// WorldBounds returns the axis-aligned box enclosing b after model.
func WorldBounds(b mesh.Bounds, model mgl32.Mat4) mesh.Bounds {
	var out mesh.Bounds
	for i := 0; i < 8; i++ {
		c := mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		p := lpmath.TransformPoint(model, c)
		if i == 0 {
			out = mesh.Bounds{Min: p, Max: p}
			continue
		}
		for a := 0; a < 3; a++ {
			out.Min[a] = min(out.Min[a], p[a])
			out.Max[a] = max(out.Max[a], p[a])
		}
	}
	return out
}

// Target is a pickable box.
type Target struct {
	ID     int
	Bounds mesh.Bounds // world space
}

// Nearest returns the ID of the closest target the ray hits.
func (r Ray) Nearest(targets []Target) (id int, t float32, ok bool) {
	best := float32(gomath.MaxFloat32)
	for _, tg := range targets {
		if d, hit := r.IntersectBounds(tg.Bounds); hit && d < best {
			best, id, ok = d, tg.ID, true
		}
	}
	return id, best, ok
}
