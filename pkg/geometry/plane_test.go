package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestGroundPlane_Hit(t *testing.T) {
	plane := NewGroundPlane()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"straight down", core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), true, 4},
		{"from below", core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), true, 2},
		{"oblique", core.NewVec3(0, 0, 0), core.NewVec3(1, -1, 0), true, 3},
		{"pointing up", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), false, 0},
		{"horizontal", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), false, 0},
		{"nearly horizontal", core.NewVec3(0, 1, 0), core.NewVec3(1, -1e-4, 0), false, 0},
		{"origin on plane", core.NewVec3(0, -3, 0), core.NewVec3(0, -1, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(core.NewRay(tt.origin, tt.direction))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Normal != core.NewVec3(0, 1, 0) {
				t.Errorf("Plane normal should always be +Y, got %v", hit.Normal)
			}
			if math.Abs(hit.Point.Y-GroundPlaneHeight) > 1e-9 {
				t.Errorf("Hit point should lie on the plane, got %v", hit.Point)
			}
		})
	}
}

func TestGroundPlaneMaterial(t *testing.T) {
	m := NewGroundPlane().Material
	if m.Diffuse != core.NewVec3(0.8, 0.8, 0.8) {
		t.Errorf("Expected light gray diffuse, got %v", m.Diffuse)
	}
	if m.DiffuseAlbedo != 1.0 {
		t.Errorf("Expected diffuse albedo 1, got %f", m.DiffuseAlbedo)
	}
}
