package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShowcaseScene creates a scene exercising every primitive type over the
// ground plane: a mirror sphere, a glass sphere, a matte box and a pyramid mesh
func NewShowcaseScene() (*Scene, Settings) {
	s := NewScene()
	s.ShowPlane(true)
	s.SetAmbient(0.3)
	s.AddLight(core.NewVec3(-6, 8, -4))
	s.AddLight(core.NewVec3(5, 6, -6))

	mirror := geometry.NewSphere(core.NewVec3(-1.8, -1.5, 0.5), 1.5)
	mirror.SetMaterial(material.NewMirror(core.NewVec3(0.8, 0.8, 0.9), 0.8))
	s.AddObject(mirror)

	glass := geometry.NewSphere(core.NewVec3(1.2, -2.1, -1.5), 0.9)
	glass.SetMaterial(material.NewGlass(core.NewVec3(0.9, 1.0, 0.9), 1.5))
	s.AddObject(glass)

	box := geometry.NewBox(core.NewVec3(1.5, -3, 1), core.NewVec3(3, -1.5, 2.5))
	boxMaterial := material.NewMatte(core.NewVec3(0.8, 0.3, 0.2))
	boxMaterial.Specular = core.NewVec3(1, 1, 1)
	boxMaterial.SpecularAlbedo = 0.3
	boxMaterial.Shininess = 50
	box.SetMaterial(boxMaterial)
	s.AddObject(box)

	if pyramid, err := newPyramid(core.NewVec3(-0.2, -3, 3), 1.5, 2.5); err == nil {
		pyramid.SetMaterial(material.NewMatte(core.NewVec3(0.2, 0.4, 0.8)))
		pyramid.SetRotation(core.NewVec3(0, 30, 0))
		pyramid.Update()
		s.AddObject(pyramid)
	}

	settings := DefaultSettings()
	settings.Camera = CameraConfig{
		Eye:    core.NewVec3(0, 1.5, -9),
		LookAt: core.NewVec3(0, -1.5, 0),
		FOV:    50.0,
	}
	settings.MaxDepth = 4
	return s, settings
}

// newPyramid builds a square pyramid mesh standing on base with the given
// half-width and height
func newPyramid(base core.Vec3, halfWidth, height float64) (*geometry.TriangleMesh, error) {
	vertices := []core.Vec3{
		base.Add(core.NewVec3(-halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, halfWidth)),
		base.Add(core.NewVec3(-halfWidth, 0, halfWidth)),
		base.Add(core.NewVec3(0, height, 0)),
	}
	faces := []int{
		0, 4, 1,
		1, 4, 2,
		2, 4, 3,
		3, 4, 0,
		0, 1, 2,
		0, 2, 3,
	}
	return geometry.NewTriangleMesh(vertices, faces)
}
