package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius is allowed and turns
// the normals inward, which renders as a bubble inside refractive media.
type Sphere struct {
	surface
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere with the default material
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		surface: newSurface(),
		Center:  center,
		Radius:  radius,
	}
}

// NewUnitSphere creates a sphere of radius 1 at the origin
func NewUnitSphere() *Sphere {
	return NewSphere(core.NewVec3(0, 0, 0), 1)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (material.HitRecord, bool) {
	if s.Radius == 0 {
		return material.HitRecord{}, false
	}

	// Quadratic equation coefficients: at² + 2ht + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Only the closer root counts. Rays starting on or inside the sphere miss it.
	root := (-halfB - sqrtD) / a
	if root <= core.Epsilon {
		return material.HitRecord{}, false
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Divide(s.Radius)
	return material.NewHitRecord(ray, root, normal, s.material), true
}

// Position returns the sphere center
func (s *Sphere) Position() core.Vec3 { return s.Center }

// SetPosition moves the sphere center
func (s *Sphere) SetPosition(p core.Vec3) { s.Center = p }

// Scale returns the radius
func (s *Sphere) Scale() float64 { return s.Radius }

// SetScale sets the radius
func (s *Sphere) SetScale(r float64) { s.Radius = r }

// Update is a no-op; a sphere caches nothing derived from its pose
func (s *Sphere) Update() {}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
