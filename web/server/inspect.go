package server

import (
	"net/http"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	ObjectIndex  int                    `json:"objectIndex"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]int                 `json:"color"`
	Properties   map[string]interface{} `json:"properties"`
}

// handleInspect reports what the ray through one pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, raytracer, err := s.createPipeline(req, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	config := raytracer.GetConfig()
	x, err := parseIntParam(r.URL.Query(), "x", 0, 0, config.Width-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(r.URL.Query(), "y", 0, 0, config.Height-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	hit, color := raytracer.TracePixel(x, y)
	primitives := sceneObj.GetPrimitives()
	response := InspectResponse{
		Hit:         hit.Hit,
		ObjectIndex: -1,
		Color:       [3]int{color.R, color.G, color.B},
		Properties:  map[string]interface{}{},
	}

	if hit.Hit {
		normal := hit.Object.NormalAt(hit.Point).Normalize()
		response.Point = vecArray(hit.Point)
		response.Normal = vecArray(normal)
		response.Distance = hit.Distance
		for i, p := range primitives {
			if p == hit.Object {
				response.ObjectIndex = i
				break
			}
		}
		if sphere, ok := hit.Object.(*geometry.Sphere); ok {
			response.GeometryType = "sphere"
			response.Properties["center"] = vecArray(sphere.Center)
			response.Properties["radius"] = sphere.Radius
			response.Properties["color"] = vecArray(sphere.Color)
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
