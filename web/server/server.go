package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port        int
	scenesDir   string
	consoleChan chan ConsoleMessage
}

// NewServer creates a new web server
func NewServer(port int, scenesDir string) *Server {
	return &Server{
		port:        port,
		scenesDir:   scenesDir,
		consoleChan: make(chan ConsoleMessage, 100),
	}
}

// maxOutputDimension bounds each side of a served image after upscaling
const maxOutputDimension = 4000

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "default")
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Workers int    `json:"workers"` // Scanline workers
	Scale   int    `json:"scale"`   // Integer upscaling factor
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/console", s.handleConsole)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scenes})
}

// handleSceneConfig returns the default camera configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := scene.CreateScene(sceneName, s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene":      sceneName,
		"primitives": sceneObj.GetPrimitiveCount(),
		"camera":     sceneObj.GetCameraConfig(),
		"light":      sceneObj.GetLight(),
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": 1, "max": 2000},
			"height":  map[string]int{"min": 1, "max": 2000},
			"workers": map[string]int{"min": 0, "max": 256},
			"scale":   map[string]int{"min": 1, "max": 8},
		},
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default"}
	query := r.URL.Query()

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.Scale, err = parseIntParam(query, "scale", 1, 1, 8); err != nil {
		return nil, err
	}

	return req, nil
}

// createPipeline builds the scene and renderer for a request
func (s *Server) createPipeline(req *RenderRequest, logger core.Logger) (*scene.Scene, *renderer.FrameRenderer, error) {
	sceneObj, err := scene.CreateScene(req.Scene, s.scenesDir, geometry.CameraConfig{
		Width:  req.Width,
		Height: req.Height,
	})
	if err != nil {
		return nil, nil, err
	}

	cameraConfig := sceneObj.GetCameraConfig()
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, nil, err
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.Width = cameraConfig.Width
	renderConfig.Height = cameraConfig.Height
	renderConfig.NumWorkers = req.Workers

	if renderConfig.Width*req.Scale > maxOutputDimension || renderConfig.Height*req.Scale > maxOutputDimension {
		return nil, nil, fmt.Errorf("output %dx%d at scale %d exceeds %d pixels per side",
			renderConfig.Width, renderConfig.Height, req.Scale, maxOutputDimension)
	}

	raytracer, err := renderer.NewFrameRenderer(sceneObj, camera, renderConfig, logger)
	if err != nil {
		return nil, nil, err
	}
	return sceneObj, raytracer, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
