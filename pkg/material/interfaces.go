package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// HitRecord contains information about a ray-object intersection. It is a
// value produced fresh by each intersection test and never aliases the
// primitive that produced it.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit outward surface normal (not flipped toward the ray)
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray arrived against the outward normal
	Material  Material  // Copy of the surface material
}

// NewHitRecord builds a hit record for ray at parameter t with the given
// outward normal. The normal is stored as given; refraction relies on seeing
// the true outward side to detect rays leaving an object.
func NewHitRecord(ray core.Ray, t float64, outwardNormal core.Vec3, mat Material) HitRecord {
	return HitRecord{
		Point:     ray.At(t),
		Normal:    outwardNormal,
		T:         t,
		FrontFace: ray.Direction.Dot(outwardNormal) < 0,
		Material:  mat,
	}
}
