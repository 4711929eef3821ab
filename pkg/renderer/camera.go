package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// worldUp is the reference up direction for the camera basis
var worldUp = core.NewVec3(0, 1, 0)

// Camera is a pinhole camera. The image plane sits one unit in front of the
// eye. After changing the eye, look-at point, field of view or aspect ratio,
// call Update before generating rays or they will use the stale basis.
type Camera struct {
	eye    core.Vec3
	lookAt core.Vec3
	fov    float64 // Vertical field of view in degrees
	aspect float64 // Width / height

	horizontal core.Vec3
	vertical   core.Vec3
	corner     core.Vec3 // Lower-left corner of the image plane
}

// NewCamera creates a camera and computes its view basis
func NewCamera(eye, lookAt core.Vec3, fov, aspect float64) *Camera {
	c := &Camera{
		eye:    eye,
		lookAt: lookAt,
		fov:    fov,
		aspect: aspect,
	}
	c.Update()
	return c
}

// Update recomputes the view basis and image plane from the camera parameters
func (c *Camera) Update() {
	// n points backward, from the look-at point toward the eye
	n := c.eye.Subtract(c.lookAt).Normalize()

	right := worldUp.Cross(n)
	if right.LengthSquared() == 0 {
		// Looking straight up or down: any horizontal right vector will do
		right = core.NewVec3(0, 0, 1).Cross(n)
	}
	u := right.Normalize()
	v := n.Cross(u)

	h := math.Tan(c.fov * math.Pi / 360.0)
	viewportHeight := 2.0 * h
	viewportWidth := viewportHeight * c.aspect

	c.horizontal = u.Multiply(viewportWidth)
	c.vertical = v.Multiply(viewportHeight)
	c.corner = c.eye.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(n)
}

// GenerateRay returns the ray from the eye through image-plane coordinates
// (s, t), where 0 <= s,t <= 1 and (0, 0) is the lower-left corner
func (c *Camera) GenerateRay(s, t float64) core.Ray {
	point := c.corner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))
	return core.NewRay(c.eye, point.Subtract(c.eye))
}

// PixelRay returns the ray through pixel (x, y) of a width x height
// framebuffer. Row 0 is the bottom row; the first and last pixels of each
// axis land on the image plane edges.
func (c *Camera) PixelRay(x, y, width, height int) core.Ray {
	return c.GenerateRay(normalizedCoordinate(x, width), normalizedCoordinate(y, height))
}

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 { return c.eye }

// SetEye moves the camera; call Update afterwards
func (c *Camera) SetEye(eye core.Vec3) { c.eye = eye }

// LookAt returns the point the camera faces
func (c *Camera) LookAt() core.Vec3 { return c.lookAt }

// SetLookAt changes the point the camera faces; call Update afterwards
func (c *Camera) SetLookAt(lookAt core.Vec3) { c.lookAt = lookAt }

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float64 { return c.fov }

// SetFOV changes the vertical field of view; call Update afterwards
func (c *Camera) SetFOV(fov float64) { c.fov = fov }

// Aspect returns the width / height ratio
func (c *Camera) Aspect() float64 { return c.aspect }

// SetAspect changes the aspect ratio; call Update afterwards
func (c *Camera) SetAspect(aspect float64) { c.aspect = aspect }
