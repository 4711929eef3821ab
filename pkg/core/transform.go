package core

import "github.com/go-gl/mathgl/mgl64"

// Transform is a 4x4 affine transform. The zero value is not usable; build
// transforms through the named constructors so every matrix encodes a valid
// affine map.
type Transform struct {
	matrix mgl64.Mat4
}

// IdentityTransform returns the transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{matrix: mgl64.Ident4()}
}

// Translate returns a translation by (x, y, z)
func Translate(x, y, z float64) Transform {
	return Transform{matrix: mgl64.Translate3D(x, y, z)}
}

// RotateX returns a rotation of angle degrees around the X axis through pivot
func RotateX(angle float64, pivot Vec3) Transform {
	return aboutPivot(mgl64.HomogRotate3DX(mgl64.DegToRad(angle)), pivot)
}

// RotateY returns a rotation of angle degrees around the Y axis through pivot
func RotateY(angle float64, pivot Vec3) Transform {
	return aboutPivot(mgl64.HomogRotate3DY(mgl64.DegToRad(angle)), pivot)
}

// RotateZ returns a rotation of angle degrees around the Z axis through pivot
func RotateZ(angle float64, pivot Vec3) Transform {
	return aboutPivot(mgl64.HomogRotate3DZ(mgl64.DegToRad(angle)), pivot)
}

// ScaleAbout returns a non-uniform scale that keeps pivot fixed
func ScaleAbout(pivot Vec3, sx, sy, sz float64) Transform {
	return aboutPivot(mgl64.Scale3D(sx, sy, sz), pivot)
}

// aboutPivot conjugates m so that it acts around pivot instead of the origin
func aboutPivot(m mgl64.Mat4, pivot Vec3) Transform {
	to := mgl64.Translate3D(pivot.X, pivot.Y, pivot.Z)
	from := mgl64.Translate3D(-pivot.X, -pivot.Y, -pivot.Z)
	return Transform{matrix: to.Mul4(m).Mul4(from)}
}

// Then returns the transform that applies t first and next afterwards
func (t Transform) Then(next Transform) Transform {
	return Transform{matrix: next.matrix.Mul4(t.matrix)}
}

// Apply transforms a point and divides by the resulting homogeneous w
func (t Transform) Apply(point Vec3) Vec3 {
	r := t.matrix.Mul4x1(mgl64.Vec4{point.X, point.Y, point.Z, 1})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}.Divide(r[3])
}

// ApplyAll transforms every point of a slice into a new slice
func (t Transform) ApplyAll(points []Vec3) []Vec3 {
	out := make([]Vec3, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}
