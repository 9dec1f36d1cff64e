package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Lit          bool                   `json:"lit"` // At least one light reaches the point
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vecJSON(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorHex(c core.Color) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo lists the Phong parameters of a material
func extractMaterialInfo(mat *material.Material) map[string]interface{} {
	return map[string]interface{}{
		"reflectionFact": mat.ReflectionFact,
		"refractionFact": mat.RefractionFact,
		"specularPower":  mat.SpecularPower,
		"specularFact":   vecJSON(mat.SpecularFact),
		"diffuseFact":    vecJSON(mat.DiffuseFact),
		"color":          colorHex(mat.DiffuseFact),
		"n":              mat.N,
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(surface geometry.Surface) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := surface.(type) {
	case *geometry.Sphere:
		properties["center"] = vecJSON(geom.Center)
		properties["radius"] = geom.Radius
		return "ball", properties

	case *geometry.Triangle:
		properties["vertices"] = [3][3]float64{vecJSON(geom.V0), vecJSON(geom.V1), vecJSON(geom.V2)}
		properties["normal"] = vecJSON(geom.GetNormal())
		return "triangle", properties

	case *geometry.GridSurface:
		properties["point"] = vecJSON(geom.Point)
		properties["normal"] = vecJSON(geom.Normal)
		if geom.Pattern != nil {
			properties["gridWidth"] = geom.Pattern.CellWidth
			properties["colors"] = [2]string{colorHex(geom.Pattern.Color1), colorHex(geom.Pattern.Color2)}
		}
		return "grid_surface", properties

	case *geometry.ImageSurface:
		properties["corner"] = vecJSON(geom.Corner)
		properties["u"] = vecJSON(geom.U)
		properties["v"] = vecJSON(geom.V)
		properties["normal"] = vecJSON(geom.Normal)
		return "image_surface", properties

	case *geometry.Body:
		properties["triangleCount"] = geom.PrimitiveCount()
		return "body", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray of a pixel and describes the nearest surface
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	ray := renderer.NewCamera(sceneObj.CameraConfig).GetRay(pixelX, pixelY)

	surface, h := sceneObj.ClosestIntersection(core.NewHandlingRay(ray))
	if surface == nil {
		return InspectResponse{Hit: false}
	}

	geometryType, geometryProps := extractGeometryInfo(surface)
	point := h.HitPoint()

	// Same visibility test Phong uses for each light
	lit := false
	for _, light := range sceneObj.Lights {
		shadow := core.NewHandlingRay(light.RayTo(point))
		if blocker, sh := sceneObj.ClosestIntersection(shadow); blocker != nil && core.IsAlmostSame(sh.HitPoint(), point) {
			lit = true
			break
		}
	}

	return InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vecJSON(point),
		Normal:       vecJSON(h.Normal()),
		Distance:     point.Subtract(ray.Origin).Length(),
		FrontFace:    h.FrontFace,
		Lit:          lit,
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(surface.Material()),
			"geometry": geometryProps,
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.loadScene(r, req, core.NopLogger{})
	if err != nil {
		writeError(w, sceneErrorStatus(err), err.Error())
		return
	}

	// Validate pixel coordinates
	cfg := sceneObj.CameraConfig
	if pixelX < 0 || pixelX >= cfg.Width || pixelY < 0 || pixelY >= cfg.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}
