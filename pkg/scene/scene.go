package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene contains everything the integrator traces against: an ordered list of
// primitives, point lights, an ambient term and the optional ground plane.
//
// The scene is edited between render passes and only read during one; it
// must not be mutated while a pass is in flight.
type Scene struct {
	objects   []geometry.Primitive
	lights    []core.Vec3
	ambient   float64
	showPlane bool
	plane     geometry.GroundPlane
}

// NewScene creates an empty scene with the ground plane hidden and no ambient light
func NewScene() *Scene {
	return &Scene{
		objects: make([]geometry.Primitive, 0),
		lights:  make([]core.Vec3, 0),
		plane:   geometry.NewGroundPlane(),
	}
}

// Hit returns the nearest intersection along the ray. The plane is checked
// first, then objects in insertion order; a later hit must be strictly closer
// to win, so ties go to whichever was checked first.
func (s *Scene) Hit(ray core.Ray) (material.HitRecord, bool) {
	hit, _, ok := s.HitObject(ray)
	return hit, ok
}

// HitObject is Hit that also reports the index of the object hit, or -1 when
// the nearest surface is the ground plane or nothing was hit
func (s *Scene) HitObject(ray core.Ray) (material.HitRecord, int, bool) {
	var closest material.HitRecord
	closestT := math.Inf(1)
	closestIndex := -1
	hitAnything := false

	if s.showPlane {
		if hit, ok := s.plane.Hit(ray); ok && hit.T < closestT {
			closest, closestT, hitAnything = hit, hit.T, true
		}
	}

	for i, object := range s.objects {
		if hit, ok := object.Hit(ray); ok && hit.T < closestT {
			closest, closestT, closestIndex, hitAnything = hit, hit.T, i, true
		}
	}

	return closest, closestIndex, hitAnything
}

// AddObject appends a primitive and returns its index
func (s *Scene) AddObject(object geometry.Primitive) int {
	s.objects = append(s.objects, object)
	return len(s.objects) - 1
}

// RemoveObject deletes the primitive at index, shifting later objects down
func (s *Scene) RemoveObject(index int) {
	s.checkObjectIndex(index)
	s.objects = append(s.objects[:index], s.objects[index+1:]...)
}

// ObjectAt returns the primitive at index. The returned handle is shared with
// the scene, so edits through it show up on the next render.
func (s *Scene) ObjectAt(index int) geometry.Primitive {
	s.checkObjectIndex(index)
	return s.objects[index]
}

// Objects returns the primitives in insertion order
func (s *Scene) Objects() []geometry.Primitive {
	return s.objects
}

// ObjectCount returns the number of primitives
func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// AddLight appends a point light and returns its index
func (s *Scene) AddLight(position core.Vec3) int {
	s.lights = append(s.lights, position)
	return len(s.lights) - 1
}

// SetLight moves the light at index
func (s *Scene) SetLight(index int, position core.Vec3) {
	s.checkLightIndex(index)
	s.lights[index] = position
}

// RemoveLight deletes the light at index
func (s *Scene) RemoveLight(index int) {
	s.checkLightIndex(index)
	s.lights = append(s.lights[:index], s.lights[index+1:]...)
}

// LightAt returns the position of the light at index
func (s *Scene) LightAt(index int) core.Vec3 {
	s.checkLightIndex(index)
	return s.lights[index]
}

// Lights returns the point light positions
func (s *Scene) Lights() []core.Vec3 {
	return s.lights
}

// Ambient returns the ambient light intensity
func (s *Scene) Ambient() float64 {
	return s.ambient
}

// SetAmbient sets the ambient light intensity
func (s *Scene) SetAmbient(ambient float64) {
	s.ambient = ambient
}

// ShowPlane toggles the ground plane
func (s *Scene) ShowPlane(show bool) {
	s.showPlane = show
}

// PlaneVisible reports whether the ground plane takes part in hit queries
func (s *Scene) PlaneVisible() bool {
	return s.showPlane
}

// GetPrimitiveCount returns the number of intersectable surfaces, counting
// each mesh triangle separately and the plane when it is shown
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	if s.showPlane {
		count++
	}
	for _, object := range s.objects {
		switch obj := object.(type) {
		case *geometry.TriangleMesh:
			count += obj.GetTriangleCount()
		default:
			count++
		}
	}
	return count
}

func (s *Scene) checkObjectIndex(index int) {
	if index < 0 || index >= len(s.objects) {
		panic(fmt.Sprintf("scene: object index %d out of range [0, %d)", index, len(s.objects)))
	}
}

func (s *Scene) checkLightIndex(index int) {
	if index < 0 || index >= len(s.lights) {
		panic(fmt.Sprintf("scene: light index %d out of range [0, %d)", index, len(s.lights)))
	}
}
