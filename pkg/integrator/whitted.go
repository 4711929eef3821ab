package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	horizonColor = core.NewVec3(1.0, 1.0, 1.0)
	zenithColor  = core.NewVec3(0.5, 0.7, 1.0)
)

// WhittedIntegrator combines local Phong lighting from point lights with
// weighted recursive reflection and refraction. It holds no state; every call
// is a pure function of its arguments.
type WhittedIntegrator struct{}

// NewWhittedIntegrator creates a Whitted-style integrator
func NewWhittedIntegrator() *WhittedIntegrator {
	return &WhittedIntegrator{}
}

// RayColor implements Integrator
func (w *WhittedIntegrator) RayColor(ray core.Ray, scene Scene, depth int) core.Vec3 {
	return w.CastRay(ray, scene, depth)
}

// CastRay returns the color seen along ray. At depth <= 0 the scene is not
// queried and only the ambient-scaled background is returned. The result is
// not clamped.
func (w *WhittedIntegrator) CastRay(ray core.Ray, scene Scene, depth int) core.Vec3 {
	if depth <= 0 {
		return ambientBackground(ray, scene)
	}

	hit, isHit := scene.Hit(ray)
	if !isHit {
		return ambientBackground(ray, scene)
	}

	mat := hit.Material

	// Secondary rays start exactly at the hit point; primitives reject t <= Epsilon
	reflectDir := core.Reflect(ray.Direction, hit.Normal)
	refractDir := core.RefractFromAir(ray.Direction, hit.Normal, mat.RefractiveIndex)
	reflected := w.CastRay(core.NewRay(hit.Point, reflectDir), scene, depth-1)
	refracted := w.CastRay(core.NewRay(hit.Point, refractDir), scene, depth-1)

	diffuse, specular := localLighting(ray, hit, scene)

	return mat.Diffuse.Multiply(mat.DiffuseAlbedo * diffuse).
		Add(mat.Specular.Multiply(mat.SpecularAlbedo * specular)).
		Add(reflected.Multiply(mat.ReflectAlbedo)).
		Add(refracted.Multiply(mat.RefractAlbedo))
}

// localLighting accumulates the diffuse and specular intensities from every
// point light at the hit. Diffuse starts from the ambient term. Both are
// clamped to at most 1.
func localLighting(ray core.Ray, hit material.HitRecord, scene Scene) (float64, float64) {
	diffuse := scene.Ambient()
	specular := 0.0
	view := ray.Direction.Normalize()

	for _, light := range scene.Lights() {
		toLight := light.Subtract(hit.Point)
		if toLight.LengthSquared() == 0 {
			continue
		}
		source := toLight.Normalize()

		diffuse += math.Max(0, source.Dot(hit.Normal))

		// Mirror of the light direction, turned to face back along the view ray
		highlight := core.Reflect(source.Negate(), hit.Normal).Negate()
		specular += math.Pow(math.Max(0, highlight.Dot(view)), hit.Material.Shininess)
	}

	return math.Min(1, diffuse), math.Min(1, specular)
}

// ambientBackground is the color returned for misses and exhausted depth
func ambientBackground(ray core.Ray, scene Scene) core.Vec3 {
	return Background(ray).Multiply(math.Min(1, 2*scene.Ambient()))
}

// Background returns the sky gradient: white toward the horizon blending to
// pale blue at the zenith, driven by the normalized direction's y component
func Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return horizonColor.Multiply(1.0 - t).Add(zenithColor.Multiply(t))
}
