package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive is an object that can be placed in a scene and hit by rays.
// Pose setters only record the new value; call Update afterwards so the
// primitive can refresh any derived geometry.
type Primitive interface {
	// Hit returns the nearest intersection with t > core.Epsilon
	Hit(ray core.Ray) (material.HitRecord, bool)

	Material() material.Material
	SetMaterial(m material.Material)

	Position() core.Vec3
	SetPosition(p core.Vec3)

	// Rotation holds angles in degrees around the X, Y and Z axes
	Rotation() core.Vec3
	SetRotation(r core.Vec3)

	Scale() float64
	SetScale(s float64)

	// Update recomputes cached state after pose or scale changes
	Update()
}

// surface holds the state every primitive shares
type surface struct {
	material material.Material
	rotation core.Vec3
}

func newSurface() surface {
	return surface{material: material.DefaultMaterial()}
}

// Material returns a copy of the primitive's material
func (s *surface) Material() material.Material { return s.material }

// SetMaterial replaces the primitive's material
func (s *surface) SetMaterial(m material.Material) { s.material = m }

// Rotation returns the stored rotation in degrees
func (s *surface) Rotation() core.Vec3 { return s.rotation }

// SetRotation stores a rotation in degrees
func (s *surface) SetRotation(r core.Vec3) { s.rotation = r }
