package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Z cross X", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"parallel", NewVec3(2, 0, 0), NewVec3(5, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if !result.ApproxEqual(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !v.ApproxEqual(NewVec3(3.0/13, 4.0/13, 12.0/13), 1e-12) {
		t.Errorf("Unexpected direction %v", v)
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when normalizing a zero vector")
		}
	}()
	Vec3{}.Normalize()
}

func TestVec3_Index(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if v.Index(axis) != expected {
			t.Errorf("Index(%d): expected %f, got %f", axis, expected, v.Index(axis))
		}
	}

	w := v.WithIndex(1, -7)
	if w != NewVec3(1, -7, 3) {
		t.Errorf("WithIndex: got %v", w)
	}
	if v != NewVec3(1, 2, 3) {
		t.Errorf("WithIndex modified the receiver: %v", v)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.25, 3).Clamp(0, 1)
	if v != NewVec3(0, 0.25, 1) {
		t.Errorf("Expected (0, 0.25, 1), got %v", v)
	}
}

func TestReflect_Properties(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 1, 0).Normalize(),
		NewVec3(-0.3, 0.2, 0.9).Normalize(),
	}
	incidents := []Vec3{
		NewVec3(1, -1, 0).Normalize(),
		NewVec3(0.2, -0.7, 0.4).Normalize(),
		NewVec3(0, 0, -1),
		NewVec3(0.5, 0.5, 0.5).Normalize(),
	}

	for _, n := range normals {
		for _, i := range incidents {
			r := Reflect(i, n)
			if math.Abs(r.Length()-1) > 1e-12 {
				t.Errorf("Reflect(%v, %v) has length %f, expected 1", i, n, r.Length())
			}
			if math.Abs(r.Dot(n)+i.Dot(n)) > 1e-12 {
				t.Errorf("Reflect(%v, %v): dot with normal %f, expected %f", i, n, r.Dot(n), -i.Dot(n))
			}
		}
	}
}

func TestRefract(t *testing.T) {
	tests := []struct {
		name     string
		incident Vec3
		normal   Vec3
		etaT     float64
		etaI     float64
		expected Vec3
	}{
		{
			name:     "normal incidence passes straight through",
			incident: NewVec3(0, -1, 0),
			normal:   NewVec3(0, 1, 0),
			etaT:     1.5,
			etaI:     1.0,
			expected: NewVec3(0, -1, 0),
		},
		{
			name:     "matched indices leave direction unchanged",
			incident: NewVec3(1, -1, 0).Normalize(),
			normal:   NewVec3(0, 1, 0),
			etaT:     1.0,
			etaI:     1.0,
			expected: NewVec3(1, -1, 0).Normalize(),
		},
		{
			name:     "exiting from the back face at normal incidence",
			incident: NewVec3(0, 1, 0),
			normal:   NewVec3(0, 1, 0),
			etaT:     1.5,
			etaI:     1.0,
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "total internal reflection returns sentinel",
			incident: NewVec3(1, 0.1, 0).Normalize(),
			normal:   NewVec3(0, 1, 0),
			etaT:     1.5,
			etaI:     1.0,
			expected: NoRefraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Refract(tt.incident, tt.normal, tt.etaT, tt.etaI)
			if !result.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)
	eta := 1.5

	refracted := RefractFromAir(incident, normal, eta)

	sinI := math.Sqrt(1 - math.Pow(incident.Dot(normal), 2))
	sinT := math.Abs(refracted.X) / refracted.Length()
	if math.Abs(sinI-eta*sinT) > 1e-9 {
		t.Errorf("Snell's law violated: sinI=%f, eta*sinT=%f", sinI, eta*sinT)
	}
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", refracted)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 2))
	if p := ray.At(1.5); p != NewVec3(1, 2, 6) {
		t.Errorf("Expected (1, 2, 6), got %v", p)
	}
}
