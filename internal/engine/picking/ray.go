// Package picking casts rays from the screen into the world and tests
// them against boxes.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/blockyworld/internal/engine/geometry"
	"github.com/Faultbox/blockyworld/pkg/math"
)

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point t units along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// invViewProj inverts everything between world and clip space.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) (Ray, bool) {
	if viewportW <= 0 || viewportH <= 0 {
		return Ray{}, false
	}
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // screen y grows down

	near := invViewProj.TransformPoint(math.V3(ndcX, ndcY, -1))
	far := invViewProj.TransformPoint(math.V3(ndcX, ndcY, 1))
	dir, ok := far.Sub(near).NormalizeOK()
	if !ok {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir}, true
}

// IntersectAABB returns the distance to the box along the ray. A ray that
// starts inside the box reports the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	o := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for k := 0; k < 3; k++ {
		if d[k] == 0 {
			if o[k] < lo[k] || o[k] > hi[k] {
				return 0, false
			}
			continue
		}
		t1 := (lo[k] - o[k]) / d[k]
		t2 := (hi[k] - o[k]) / d[k]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// TransformBounds returns the world box enclosing local bounds b placed by m.
func TransformBounds(b geometry.Bounds, m math.Mat4) AABB {
	box := AABB{
		Min: math.V3(math32.Inf(1), math32.Inf(1), math32.Inf(1)),
		Max: math.V3(math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)),
	}
	for i := 0; i < 8; i++ {
		c := math.V3(b.Min[0], b.Min[1], b.Min[2])
		if i&1 != 0 {
			c.X = b.Max[0]
		}
		if i&2 != 0 {
			c.Y = b.Max[1]
		}
		if i&4 != 0 {
			c.Z = b.Max[2]
		}
		p := m.TransformPoint(c)
		box.Min = math.V3(math32.Min(box.Min.X, p.X), math32.Min(box.Min.Y, p.Y), math32.Min(box.Min.Z, p.Z))
		box.Max = math.V3(math32.Max(box.Max.X, p.X), math32.Max(box.Max.Y, p.Y), math32.Max(box.Max.Z, p.Z))
	}
	return box
}

// Nearest returns the index of the closest box the ray hits, or -1.
func (r Ray) Nearest(boxes []AABB) (index int, t float32) {
	index = -1
	for i, b := range boxes {
		if d, ok := r.IntersectAABB(b); ok && (index < 0 || d < t) {
			index, t = i, d
		}
	}
	return index, t
}
