// Package editor holds the interactive edits the viewer applies to a scene
// and camera between render passes.
package editor

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Action is a single edit the user can request
type Action int

const (
	OrbitLeft Action = iota
	OrbitRight
	RaiseEye
	LowerEye
	ZoomIn
	ZoomOut
	RaiseLookAt
	LowerLookAt
	WidenFOV
	NarrowFOV
	DepthUp
	DepthDown
	AmbientUp
	AmbientDown
	TogglePlane
	AddLight
	RemoveLight
	NextLight
	LightLeft
	LightRight
	LightDown
	LightUp
	LightBack
	LightForward
	AddBubble
	RemoveObject
	NextObject
	GrowObject
	ShrinkObject
	SpinObject
	DiffuseUp
	DiffuseDown
	SpecularUp
	SpecularDown
	RefractUp
	RefractDown
	RefractiveIndexUp
	RefractiveIndexDown
	ShininessUp
	ShininessDown
)

// Limits mirror the ranges of the original sliders
const (
	MaxDepth        = 10
	minFOV          = 1.0
	maxFOV          = 90.0
	orbitStep       = 10.0 // degrees
	zoomFactor      = 0.9
	albedoStep      = 0.05
	scaleStep       = 0.1
	spinStep        = 15.0 // degrees
	minRefractive   = 1.0
	maxRefractive   = 5.0
	refractiveStep  = 0.05
	eyeHeightStep   = 0.5
	minZoomDistance = 0.5
	lookAtRange     = 10.0
	lightStep       = 0.5
	lightRange      = 15.0
	shininessStep   = 50.0
	maxShininess    = 1000.0
)

// Editor applies user actions to a scene and camera and tracks whether a
// re-render is needed. It must not be used while a render pass is running.
type Editor struct {
	Scene         *scene.Scene
	Camera        *renderer.Camera
	Depth         int
	Selected      int // Index of the selected object
	SelectedLight int // Index of the selected light

	dirty bool
}

// New creates an editor that starts dirty so the first frame renders
func New(sc *scene.Scene, camera *renderer.Camera, depth int) *Editor {
	return &Editor{
		Scene:  sc,
		Camera: camera,
		Depth:  depth,
		dirty:  true,
	}
}

// Dirty reports whether an edit happened since the last render
func (e *Editor) Dirty() bool { return e.dirty }

// MarkRendered clears the dirty flag after a render pass
func (e *Editor) MarkRendered() { e.dirty = false }

// Apply performs one action. Actions that need a selected object or light are
// ignored when there is none.
func (e *Editor) Apply(action Action) {
	switch action {
	case OrbitLeft, OrbitRight:
		angle := orbitStep
		if action == OrbitRight {
			angle = -orbitStep
		}
		e.moveEye(core.RotateY(angle, e.Camera.LookAt()).Apply(e.Camera.Eye()))
	case RaiseEye, LowerEye:
		step := eyeHeightStep
		if action == LowerEye {
			step = -eyeHeightStep
		}
		e.moveEye(e.Camera.Eye().Add(core.NewVec3(0, step, 0)))
	case ZoomIn, ZoomOut:
		factor := zoomFactor
		if action == ZoomOut {
			factor = 1 / zoomFactor
		}
		offset := e.Camera.Eye().Subtract(e.Camera.LookAt()).Multiply(factor)
		if offset.Length() < minZoomDistance {
			return
		}
		e.moveEye(e.Camera.LookAt().Add(offset))
	case RaiseLookAt, LowerLookAt:
		step := eyeHeightStep
		if action == LowerLookAt {
			step = -eyeHeightStep
		}
		lookAt := e.Camera.LookAt()
		lookAt.Y = clamp(lookAt.Y+step, -lookAtRange, lookAtRange)
		e.Camera.SetLookAt(lookAt)
		e.Camera.Update()
	case WidenFOV, NarrowFOV:
		step := 5.0
		if action == NarrowFOV {
			step = -5.0
		}
		e.Camera.SetFOV(clamp(e.Camera.FOV()+step, minFOV, maxFOV))
		e.Camera.Update()
	case DepthUp:
		e.Depth = min(MaxDepth, e.Depth+1)
	case DepthDown:
		e.Depth = max(0, e.Depth-1)
	case AmbientUp:
		e.Scene.SetAmbient(clamp(e.Scene.Ambient()+albedoStep, 0, 1))
	case AmbientDown:
		e.Scene.SetAmbient(clamp(e.Scene.Ambient()-albedoStep, 0, 1))
	case TogglePlane:
		e.Scene.ShowPlane(!e.Scene.PlaneVisible())
	case AddLight:
		e.SelectedLight = e.Scene.AddLight(core.NewVec3(0, 0, 0))
	case RemoveLight:
		if len(e.Scene.Lights()) == 0 {
			return
		}
		e.Scene.RemoveLight(e.SelectedLight)
		e.SelectedLight = 0
	case NextLight:
		if n := len(e.Scene.Lights()); n > 0 {
			e.SelectedLight = (e.SelectedLight + 1) % n
		}
		return
	case LightLeft, LightRight, LightDown, LightUp, LightBack, LightForward:
		if !e.moveLight(action) {
			return
		}
	case AddBubble:
		e.Selected = e.Scene.AddObject(geometry.NewUnitSphere())
	case RemoveObject:
		if e.Scene.ObjectCount() == 0 {
			return
		}
		e.Scene.RemoveObject(e.Selected)
		e.Selected = 0
	case NextObject:
		if n := e.Scene.ObjectCount(); n > 0 {
			e.Selected = (e.Selected + 1) % n
		}
		return
	default:
		if !e.editSelected(action) {
			return
		}
	}
	e.dirty = true
}

// editSelected applies pose and material actions to the selected object
func (e *Editor) editSelected(action Action) bool {
	if e.Selected < 0 || e.Selected >= e.Scene.ObjectCount() {
		return false
	}
	object := e.Scene.ObjectAt(e.Selected)
	mat := object.Material()

	switch action {
	case GrowObject:
		object.SetScale(object.Scale() + scaleStep)
	case ShrinkObject:
		object.SetScale(object.Scale() - scaleStep)
	case SpinObject:
		rotation := object.Rotation()
		rotation.Y += spinStep
		object.SetRotation(rotation)
	case DiffuseUp:
		mat.DiffuseAlbedo = clamp(mat.DiffuseAlbedo+albedoStep, 0, 1)
	case DiffuseDown:
		mat.DiffuseAlbedo = clamp(mat.DiffuseAlbedo-albedoStep, 0, 1)
	case SpecularUp:
		mat.SpecularAlbedo = clamp(mat.SpecularAlbedo+albedoStep, 0, 1)
	case SpecularDown:
		mat.SpecularAlbedo = clamp(mat.SpecularAlbedo-albedoStep, 0, 1)
	case RefractUp:
		mat.RefractAlbedo = clamp(mat.RefractAlbedo+albedoStep, 0, 1)
	case RefractDown:
		mat.RefractAlbedo = clamp(mat.RefractAlbedo-albedoStep, 0, 1)
	case RefractiveIndexUp:
		mat.RefractiveIndex = clamp(mat.RefractiveIndex+refractiveStep, minRefractive, maxRefractive)
	case RefractiveIndexDown:
		mat.RefractiveIndex = clamp(mat.RefractiveIndex-refractiveStep, minRefractive, maxRefractive)
	case ShininessUp:
		mat.Shininess = clamp(mat.Shininess+shininessStep, 0, maxShininess)
	case ShininessDown:
		mat.Shininess = clamp(mat.Shininess-shininessStep, 0, maxShininess)
	default:
		return false
	}

	object.SetMaterial(mat)
	object.Update()
	return true
}

// moveLight steps the selected light along one axis, keeping each coordinate
// within [-lightRange, lightRange]
func (e *Editor) moveLight(action Action) bool {
	if e.SelectedLight < 0 || e.SelectedLight >= len(e.Scene.Lights()) {
		return false
	}

	var step core.Vec3
	switch action {
	case LightLeft:
		step = core.NewVec3(-lightStep, 0, 0)
	case LightRight:
		step = core.NewVec3(lightStep, 0, 0)
	case LightDown:
		step = core.NewVec3(0, -lightStep, 0)
	case LightUp:
		step = core.NewVec3(0, lightStep, 0)
	case LightBack:
		step = core.NewVec3(0, 0, -lightStep)
	case LightForward:
		step = core.NewVec3(0, 0, lightStep)
	}

	light := e.Scene.LightAt(e.SelectedLight).Add(step)
	e.Scene.SetLight(e.SelectedLight, core.NewVec3(
		clamp(light.X, -lightRange, lightRange),
		clamp(light.Y, -lightRange, lightRange),
		clamp(light.Z, -lightRange, lightRange),
	))
	return true
}

func (e *Editor) moveEye(eye core.Vec3) {
	e.Camera.SetEye(eye)
	e.Camera.Update()
}

// Status returns a one-line summary of the editable state
func (e *Editor) Status() string {
	return fmt.Sprintf("depth %d  ambient %.2f  plane %t  object %d/%d  light %d/%d",
		e.Depth, e.Scene.Ambient(), e.Scene.PlaneVisible(),
		e.Selected, e.Scene.ObjectCount(), e.SelectedLight, len(e.Scene.Lights()))
}

func clamp(value, lo, hi float64) float64 {
	return max(lo, min(hi, value))
}
