package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene is the read-only view of a scene the integrator needs.
// *scene.Scene satisfies it; the interface keeps this package free of the
// scene package and lets tests count queries.
type Scene interface {
	Hit(ray core.Ray) (material.HitRecord, bool)
	Lights() []core.Vec3
	Ambient() float64
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray with depth levels of
	// recursion remaining
	RayColor(ray core.Ray, scene Scene, depth int) core.Vec3
}
