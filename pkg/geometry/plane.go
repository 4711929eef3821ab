package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// GroundPlaneHeight is the fixed y coordinate of the ground plane
const GroundPlaneHeight = -3.0

// GroundPlane is the infinite horizontal plane a scene can show under its
// objects. It is owned by the scene rather than being an editable primitive.
type GroundPlane struct {
	Height   float64
	Material material.Material
}

// NewGroundPlane creates the ground plane at y = -3 with its fixed material
func NewGroundPlane() GroundPlane {
	return GroundPlane{
		Height:   GroundPlaneHeight,
		Material: GroundPlaneMaterial(),
	}
}

// GroundPlaneMaterial is the default material with a light gray, fully
// weighted diffuse term
func GroundPlaneMaterial() material.Material {
	m := material.DefaultMaterial()
	m.Diffuse = core.NewVec3(0.8, 0.8, 0.8)
	m.DiffuseAlbedo = 1.0
	return m
}

// Hit tests if a ray intersects with the plane
func (p GroundPlane) Hit(ray core.Ray) (material.HitRecord, bool) {
	// Nearly horizontal rays never reach the plane
	if math.Abs(ray.Direction.Y) <= core.Epsilon {
		return material.HitRecord{}, false
	}

	t := (p.Height - ray.Origin.Y) / ray.Direction.Y
	if t <= core.Epsilon {
		return material.HitRecord{}, false
	}

	return material.NewHitRecord(ray, t, core.NewVec3(0, 1, 0), p.Material), true
}
