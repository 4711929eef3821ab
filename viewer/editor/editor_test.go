package editor

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func newTestEditor() *Editor {
	sc := scene.NewScene()
	sc.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 0), 1))
	sc.AddObject(geometry.NewDefaultBox())
	sc.AddLight(core.NewVec3(0, 5, 0))
	camera := renderer.NewCamera(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 0), 45, 1)
	ed := New(sc, camera, 3)
	ed.MarkRendered()
	return ed
}

func TestNew_StartsDirty(t *testing.T) {
	ed := New(scene.NewScene(), renderer.NewCamera(core.NewVec3(0, 0, -1), core.Vec3{}, 45, 1), 2)
	if !ed.Dirty() {
		t.Error("New editor should request an initial render")
	}
	ed.MarkRendered()
	if ed.Dirty() {
		t.Error("MarkRendered should clear the dirty flag")
	}
}

func TestApply_Depth(t *testing.T) {
	ed := newTestEditor()
	ed.Depth = MaxDepth
	ed.Apply(DepthUp)
	if ed.Depth != MaxDepth {
		t.Errorf("Depth should stay at %d, got %d", MaxDepth, ed.Depth)
	}

	ed.Depth = 0
	ed.Apply(DepthDown)
	if ed.Depth != 0 {
		t.Errorf("Depth should not go below 0, got %d", ed.Depth)
	}
	if !ed.Dirty() {
		t.Error("Depth edits should mark the editor dirty")
	}
}

func TestApply_OrbitKeepsDistance(t *testing.T) {
	ed := newTestEditor()
	before := ed.Camera.Eye().Subtract(ed.Camera.LookAt()).Length()

	ed.Apply(OrbitLeft)

	eye := ed.Camera.Eye()
	after := eye.Subtract(ed.Camera.LookAt()).Length()
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("Orbit changed distance from %f to %f", before, after)
	}
	if math.Abs(eye.Y) > 1e-9 {
		t.Errorf("Orbit about Y should keep eye height, got %f", eye.Y)
	}
	if math.Abs(eye.X) < 1e-3 {
		t.Error("Orbit should move the eye sideways")
	}

	ed.Apply(OrbitRight)
	if !ed.Camera.Eye().ApproxEqual(core.NewVec3(0, 0, -10), 1e-9) {
		t.Errorf("Orbit left then right should return to start, got %v", ed.Camera.Eye())
	}
}

func TestApply_Zoom(t *testing.T) {
	ed := newTestEditor()
	ed.Apply(ZoomIn)
	if got := ed.Camera.Eye().Length(); math.Abs(got-9) > 1e-9 {
		t.Errorf("Expected eye 9 units from target after zoom in, got %f", got)
	}

	ed.Camera.SetEye(core.NewVec3(0, 0, -0.5))
	ed.MarkRendered()
	ed.Apply(ZoomIn)
	if ed.Dirty() {
		t.Error("Zoom past the minimum distance should be ignored")
	}
}

func TestApply_AmbientClamped(t *testing.T) {
	ed := newTestEditor()
	for range 30 {
		ed.Apply(AmbientUp)
	}
	if ed.Scene.Ambient() != 1 {
		t.Errorf("Ambient should clamp to 1, got %f", ed.Scene.Ambient())
	}
	for range 30 {
		ed.Apply(AmbientDown)
	}
	if ed.Scene.Ambient() != 0 {
		t.Errorf("Ambient should clamp to 0, got %f", ed.Scene.Ambient())
	}
}

func TestApply_TogglePlane(t *testing.T) {
	ed := newTestEditor()
	ed.Apply(TogglePlane)
	if !ed.Scene.PlaneVisible() {
		t.Error("Plane should be visible after toggle")
	}
	ed.Apply(TogglePlane)
	if ed.Scene.PlaneVisible() {
		t.Error("Plane should be hidden after second toggle")
	}
}

func TestApply_ObjectsAndLights(t *testing.T) {
	ed := newTestEditor()

	ed.Apply(AddBubble)
	if ed.Scene.ObjectCount() != 3 || ed.Selected != 2 {
		t.Fatalf("Expected new bubble selected at index 2, got count %d selected %d", ed.Scene.ObjectCount(), ed.Selected)
	}

	ed.Apply(NextObject)
	if ed.Selected != 0 {
		t.Errorf("Selection should wrap to 0, got %d", ed.Selected)
	}

	ed.Apply(RemoveObject)
	if ed.Scene.ObjectCount() != 2 {
		t.Errorf("Expected 2 objects after remove, got %d", ed.Scene.ObjectCount())
	}

	ed.Apply(AddLight)
	if len(ed.Scene.Lights()) != 2 || ed.SelectedLight != 1 {
		t.Errorf("Expected new light selected at index 1, got %d lights selected %d", len(ed.Scene.Lights()), ed.SelectedLight)
	}
	ed.Apply(RemoveLight)
	ed.Apply(RemoveLight)
	ed.MarkRendered()
	ed.Apply(RemoveLight)
	if ed.Dirty() {
		t.Error("Removing from an empty light list should be ignored")
	}
}

func TestApply_EditSelected(t *testing.T) {
	ed := newTestEditor()

	ed.Apply(GrowObject)
	sphere := ed.Scene.ObjectAt(0).(*geometry.Sphere)
	if math.Abs(sphere.Radius-1.1) > 1e-9 {
		t.Errorf("Expected radius 1.1, got %f", sphere.Radius)
	}

	ed.Apply(RefractUp)
	if got := sphere.Material().RefractAlbedo; math.Abs(got-albedoStep) > 1e-9 {
		t.Errorf("Expected refract albedo %f, got %f", albedoStep, got)
	}

	for range 200 {
		ed.Apply(RefractiveIndexUp)
	}
	if got := sphere.Material().RefractiveIndex; got != maxRefractive {
		t.Errorf("Refractive index should clamp to %f, got %f", maxRefractive, got)
	}

	ed.Scene.RemoveObject(1)
	ed.Scene.RemoveObject(0)
	ed.MarkRendered()
	ed.Apply(GrowObject)
	if ed.Dirty() {
		t.Error("Edits without a selected object should be ignored")
	}
}

func TestApply_MoveLight(t *testing.T) {
	ed := newTestEditor()

	ed.Apply(LightRight)
	ed.Apply(LightUp)
	ed.Apply(LightBack)
	if got := ed.Scene.LightAt(0); !got.ApproxEqual(core.NewVec3(lightStep, 5+lightStep, -lightStep), 1e-9) {
		t.Errorf("Unexpected light position %v", got)
	}
	if !ed.Dirty() {
		t.Error("Moving a light should mark the editor dirty")
	}

	for range 100 {
		ed.Apply(LightUp)
		ed.Apply(LightLeft)
	}
	if got := ed.Scene.LightAt(0); got.Y != lightRange || got.X != -lightRange {
		t.Errorf("Light should clamp to +/-%f, got %v", lightRange, got)
	}

	// Only the selected light moves
	ed.Apply(AddLight)
	ed.Apply(LightForward)
	if got := ed.Scene.LightAt(1); got != core.NewVec3(0, 0, lightStep) {
		t.Errorf("Expected new light at (0,0,%f), got %v", lightStep, got)
	}
	if got := ed.Scene.LightAt(0); got.Z != -lightStep {
		t.Errorf("First light should not move, got %v", got)
	}

	ed.Apply(RemoveLight)
	ed.Apply(RemoveLight)
	ed.MarkRendered()
	ed.Apply(LightUp)
	if ed.Dirty() {
		t.Error("Moving a light with none selected should be ignored")
	}
}

func TestApply_SpecularAndShininess(t *testing.T) {
	ed := newTestEditor()
	sphere := ed.Scene.ObjectAt(0)

	ed.Apply(SpecularUp)
	if got := sphere.Material().SpecularAlbedo; math.Abs(got-(0.125+albedoStep)) > 1e-9 {
		t.Errorf("Expected specular albedo %f, got %f", 0.125+albedoStep, got)
	}
	for range 50 {
		ed.Apply(SpecularDown)
	}
	if got := sphere.Material().SpecularAlbedo; got != 0 {
		t.Errorf("Specular albedo should clamp to 0, got %f", got)
	}

	ed.Apply(ShininessUp)
	if got := sphere.Material().Shininess; got != maxShininess {
		t.Errorf("Shininess should clamp to %f, got %f", maxShininess, got)
	}
	ed.Apply(ShininessDown)
	if got := sphere.Material().Shininess; got != maxShininess-shininessStep {
		t.Errorf("Expected shininess %f, got %f", maxShininess-shininessStep, got)
	}
	for range 50 {
		ed.Apply(ShininessDown)
	}
	if got := sphere.Material().Shininess; got != 0 {
		t.Errorf("Shininess should clamp to 0, got %f", got)
	}
}

func TestApply_LookAt(t *testing.T) {
	ed := newTestEditor()
	ed.Apply(RaiseLookAt)
	if got := ed.Camera.LookAt(); got != core.NewVec3(0, eyeHeightStep, 0) {
		t.Errorf("Expected look-at raised by %f, got %v", eyeHeightStep, got)
	}
	if !ed.Dirty() {
		t.Error("Look-at edits should mark the editor dirty")
	}

	for range 50 {
		ed.Apply(LowerLookAt)
	}
	if got := ed.Camera.LookAt().Y; got != -lookAtRange {
		t.Errorf("Look-at height should clamp to %f, got %f", -lookAtRange, got)
	}
}
