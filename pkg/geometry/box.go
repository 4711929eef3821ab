package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Box represents an axis-aligned box. Its pose is a center plus a uniform
// scale applied to the half-extents it was created with. Rotation is stored
// for the editing layer but the box always stays axis-aligned.
type Box struct {
	surface
	Min, Max core.Vec3

	center      core.Vec3
	halfExtents core.Vec3 // Half-extents at scale 1
	scale       float64
}

// NewBox creates a new axis-aligned box spanning min to max
func NewBox(min, max core.Vec3) *Box {
	center := min.Add(max).Multiply(0.5)
	return &Box{
		surface:     newSurface(),
		Min:         min,
		Max:         max,
		center:      center,
		halfExtents: max.Subtract(center),
		scale:       1.0,
	}
}

// NewDefaultBox creates the 6x6x6 box centered at the origin
func NewDefaultBox() *Box {
	return NewBox(core.NewVec3(-3, -3, -3), core.NewVec3(3, 3, 3))
}

// Hit tests the ray against the three slabs, remembering which axis produced
// the latest entry so the face normal can be recovered
func (b *Box) Hit(ray core.Ray) (material.HitRecord, bool) {
	normalAxis := -1
	tEnter := math.Inf(-1)
	tExit := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		lo := b.Min.Index(axis)
		hi := b.Max.Index(axis)
		origin := ray.Origin.Index(axis)
		direction := ray.Direction.Index(axis)

		if direction == 0 {
			// Parallel to this slab: inside for all t or never
			if origin < lo || origin > hi {
				return material.HitRecord{}, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (lo - origin) * invDirection
		t1 := (hi - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tEnter {
			tEnter = t0
			normalAxis = axis
		}
		tExit = math.Min(tExit, t1)
	}

	if normalAxis < 0 || tEnter >= tExit || tEnter <= core.Epsilon {
		return material.HitRecord{}, false
	}

	point := ray.At(tEnter)
	side := sign(point.Subtract(b.center).Index(normalAxis))
	normal := core.Vec3{}.WithIndex(normalAxis, side)
	return material.NewHitRecord(ray, tEnter, normal, b.material), true
}

// Position returns the box center
func (b *Box) Position() core.Vec3 { return b.center }

// SetPosition moves the box center; call Update to move the corners
func (b *Box) SetPosition(p core.Vec3) { b.center = p }

// Scale returns the uniform scale relative to the original size
func (b *Box) Scale() float64 { return b.scale }

// SetScale sets the uniform scale; call Update to resize the corners
func (b *Box) SetScale(s float64) { b.scale = s }

// Update recomputes the corners from center, half-extents and scale
func (b *Box) Update() {
	half := b.halfExtents.Multiply(math.Abs(b.scale))
	b.Min = b.center.Subtract(half)
	b.Max = b.center.Add(half)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}

func sign(value float64) float64 {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	}
	return 0
}
