package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light in the Whitted model.
// The four albedo weights are independent and are not normalized to sum to 1,
// so bright settings can produce values above 1 before the framebuffer clamps.
type Material struct {
	Diffuse  core.Vec3 // Diffuse color
	Specular core.Vec3 // Specular highlight color

	DiffuseAlbedo  float64 // Weight of the diffuse term
	SpecularAlbedo float64 // Weight of the specular term
	ReflectAlbedo  float64 // Weight of the mirror reflection term
	RefractAlbedo  float64 // Weight of the refraction term

	Shininess       float64 // Phong exponent
	RefractiveIndex float64 // Index of refraction of the interior
}

// DefaultMaterial returns the material new primitives start with: a mostly
// refractive, very glossy surface with black diffuse and specular colors.
func DefaultMaterial() Material {
	return Material{
		DiffuseAlbedo:   0.145,
		SpecularAlbedo:  0.125,
		ReflectAlbedo:   0.0,
		RefractAlbedo:   0.655,
		Shininess:       1000.0,
		RefractiveIndex: 4.0,
	}
}

// NewMatte creates a purely diffuse material of the given color
func NewMatte(color core.Vec3) Material {
	m := DefaultMaterial()
	m.Diffuse = color
	m.DiffuseAlbedo = 1.0
	m.SpecularAlbedo = 0
	m.RefractAlbedo = 0
	return m
}

// NewGlass creates a clear refractive material with a white highlight
func NewGlass(color core.Vec3, refractiveIndex float64) Material {
	return Material{
		Diffuse:         color,
		Specular:        core.NewVec3(1, 1, 1),
		DiffuseAlbedo:   0.4,
		SpecularAlbedo:  0.125,
		RefractAlbedo:   1.0,
		Shininess:       1000.0,
		RefractiveIndex: refractiveIndex,
	}
}

// NewMirror creates a reflective material with a faint diffuse base
func NewMirror(color core.Vec3, reflectance float64) Material {
	return Material{
		Diffuse:         color,
		Specular:        core.NewVec3(1, 1, 1),
		DiffuseAlbedo:   0.1,
		SpecularAlbedo:  0.5,
		ReflectAlbedo:   reflectance,
		Shininess:       500.0,
		RefractiveIndex: 1.0,
	}
}
