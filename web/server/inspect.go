package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ObjectIndex  int                    `json:"objectIndex"` // -1 for the ground plane or a miss
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Material     map[string]interface{} `json:"material,omitempty"`
	Geometry     map[string]interface{} `json:"geometry,omitempty"`
	Color        [3]float64             `json:"color"` // Traced color before clamping
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := parseRenderRequest(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, pixelY, err := parsePixel(values, req.Width, req.Height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc, camera, depth, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sc, camera, req.Width, req.Height, pixelX, pixelY, depth))
}

// parsePixel reads the x and y query parameters in image coordinates
func parsePixel(values url.Values, width, height int) (int, int, error) {
	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate")
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate")
	}
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		return 0, 0, fmt.Errorf("pixel coordinates out of bounds")
	}
	return pixelX, pixelY, nil
}

// inspectPixel casts the primary ray through an image pixel (row 0 at the
// top) and reports the nearest surface and the color traced for it
func inspectPixel(sc *scene.Scene, camera *renderer.Camera, width, height, pixelX, pixelY, depth int) InspectResponse {
	ray := camera.PixelRay(pixelX, height-1-pixelY, width, height)
	color := integrator.NewWhittedIntegrator().RayColor(ray, sc, depth)

	response := InspectResponse{ObjectIndex: -1, Color: toArray(color)}
	hit, index, isHit := sc.HitObject(ray)
	if !isHit {
		return response
	}

	response.Hit = true
	response.Point = toArray(hit.Point)
	response.Normal = toArray(hit.Normal)
	response.Distance = hit.T
	response.FrontFace = hit.FrontFace
	response.Material = extractMaterialInfo(hit.Material)

	response.ObjectIndex = index
	if index < 0 {
		response.GeometryType = "plane"
		return response
	}
	response.GeometryType, response.Geometry = extractGeometryInfo(sc.ObjectAt(index))
	return response
}

// extractMaterialInfo lists the Whitted material parameters
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"diffuse":         hexColor(mat.Diffuse),
		"specular":        hexColor(mat.Specular),
		"diffuseAlbedo":   mat.DiffuseAlbedo,
		"specularAlbedo":  mat.SpecularAlbedo,
		"reflectAlbedo":   mat.ReflectAlbedo,
		"refractAlbedo":   mat.RefractAlbedo,
		"shininess":       mat.Shininess,
		"refractiveIndex": mat.RefractiveIndex,
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(object geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := object.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Box:
		properties["min"] = toArray(geom.Min)
		properties["max"] = toArray(geom.Max)
		return "box", properties

	case *geometry.TriangleMesh:
		properties["triangleCount"] = geom.GetTriangleCount()
		bbox := geom.BoundingBox()
		properties["boundingBox"] = map[string]interface{}{
			"min": toArray(bbox.Min),
			"max": toArray(bbox.Max),
		}
		return "triangle_mesh", properties

	default:
		return "unknown", properties
	}
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	channel := func(v float64) int { return int(min(max(v, 0), 1) * 255) }
	return fmt.Sprintf("#%02x%02x%02x", channel(c.X), channel(c.Y), channel(c.Z))
}
