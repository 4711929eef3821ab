package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes the camera a scene is meant to be viewed from
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera faces
	FOV    float64   // Vertical field of view in degrees
}

// Settings carries the view and recursion depth recommended for a scene
type Settings struct {
	Camera   CameraConfig
	MaxDepth int // Maximum recursion depth for reflection and refraction
}

// DefaultSettings returns the view used by the interactive demo
func DefaultSettings() Settings {
	return Settings{
		Camera: CameraConfig{
			Eye:    core.NewVec3(0, 4, -7),
			LookAt: core.NewVec3(0, 0, 0),
			FOV:    45.0,
		},
		MaxDepth: 3,
	}
}
