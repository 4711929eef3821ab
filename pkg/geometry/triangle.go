package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// determinantEpsilon rejects rays lying (nearly) in the triangle's plane
const determinantEpsilon = 1e-8

// intersectTriangle tests a ray against triangle (v0, v1, v2) using the
// Möller-Trumbore algorithm. Back faces are culled: only rays travelling
// against the winding normal normalize((v1-v0) × (v2-v0)) can hit. It returns
// the ray parameter and that normal.
func intersectTriangle(ray core.Ray, v0, v1, v2 core.Vec3) (float64, core.Vec3, bool) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det < determinantEpsilon {
		return 0, core.Vec3{}, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, core.Vec3{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, core.Vec3{}, false
	}

	t := f * edge2.Dot(q)
	if t <= core.Epsilon {
		return 0, core.Vec3{}, false
	}

	return t, edge1.Cross(edge2).Normalize(), true
}
