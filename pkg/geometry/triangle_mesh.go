package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// TriangleMesh is a triangulated surface with a single material. A bounding
// box around the whole mesh rejects missing rays before the face scan.
type TriangleMesh struct {
	surface

	baseVertices []core.Vec3 // Vertices as loaded
	vertices     []core.Vec3 // Vertices after the current pose
	faces        []int       // Three vertex indices per triangle, 0-based
	bbox         core.AABB
	centroid     core.Vec3 // Bounding box center at load time

	position core.Vec3
	scale    float64
}

// NewTriangleMesh creates a mesh from vertices and face indices. Each group of
// three indices forms one triangle. The bounding box and centroid are derived
// once here; the mesh starts at its loaded position with scale 1.
func NewTriangleMesh(vertices []core.Vec3, faces []int) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}
	for i, index := range faces {
		if index < 0 || index >= len(vertices) {
			return nil, fmt.Errorf("face %d references vertex %d, mesh has %d vertices", i/3, index, len(vertices))
		}
	}

	base := make([]core.Vec3, len(vertices))
	copy(base, vertices)
	bbox := core.NewAABBFromPoints(base)

	return &TriangleMesh{
		surface:      newSurface(),
		baseVertices: base,
		vertices:     base,
		faces:        append([]int(nil), faces...),
		bbox:         bbox,
		centroid:     bbox.Center(),
		position:     bbox.Center(),
		scale:        1.0,
	}, nil
}

// Hit finds the closest triangle hit after a bounding box pre-check
func (tm *TriangleMesh) Hit(ray core.Ray) (material.HitRecord, bool) {
	if !tm.bbox.Hit(ray, core.Epsilon, math.Inf(1)) {
		return material.HitRecord{}, false
	}

	closestT := math.Inf(1)
	var closestNormal core.Vec3
	for face := 0; face < tm.GetTriangleCount(); face++ {
		v0, v1, v2 := tm.triangle(face)
		if t, normal, ok := intersectTriangle(ray, v0, v1, v2); ok && t < closestT {
			closestT = t
			closestNormal = normal
		}
	}

	if math.IsInf(closestT, 1) {
		return material.HitRecord{}, false
	}
	return material.NewHitRecord(ray, closestT, closestNormal, tm.material), true
}

func (tm *TriangleMesh) triangle(face int) (core.Vec3, core.Vec3, core.Vec3) {
	i := face * 3
	return tm.vertices[tm.faces[i]], tm.vertices[tm.faces[i+1]], tm.vertices[tm.faces[i+2]]
}

// Position returns where the mesh centroid is placed
func (tm *TriangleMesh) Position() core.Vec3 { return tm.position }

// SetPosition places the mesh centroid; call Update to apply
func (tm *TriangleMesh) SetPosition(p core.Vec3) { tm.position = p }

// Scale returns the uniform scale about the centroid
func (tm *TriangleMesh) Scale() float64 { return tm.scale }

// SetScale sets the uniform scale; call Update to apply
func (tm *TriangleMesh) SetScale(s float64) { tm.scale = s }

// Update rebuilds the posed vertices from the loaded ones: scale and rotate
// about the centroid, then move the centroid to Position. The bounding box is
// refreshed to match.
func (tm *TriangleMesh) Update() {
	rotation := tm.rotation
	transform := core.ScaleAbout(tm.centroid, tm.scale, tm.scale, tm.scale).
		Then(core.RotateX(rotation.X, tm.centroid)).
		Then(core.RotateY(rotation.Y, tm.centroid)).
		Then(core.RotateZ(rotation.Z, tm.centroid)).
		Then(core.Translate(
			tm.position.X-tm.centroid.X,
			tm.position.Y-tm.centroid.Y,
			tm.position.Z-tm.centroid.Z,
		))

	tm.vertices = transform.ApplyAll(tm.baseVertices)
	tm.bbox = core.NewAABBFromPoints(tm.vertices)
}

// BoundingBox returns the axis-aligned bounding box for the posed mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// Centroid returns the load-time bounding box center
func (tm *TriangleMesh) Centroid() core.Vec3 {
	return tm.centroid
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.faces) / 3
}
