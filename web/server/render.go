package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-pinhole-raytracer/pkg/output"
)

// handleRender renders one frame and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	logger := NewWebLogger(r.Header.Get("X-Request-ID"), s.consoleChan)

	_, raytracer, err := s.createPipeline(req, logger)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// Client disconnects cancel scanline workers
	img, stats, err := raytracer.RenderImage(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("Render error: %v", err)})
		return
	}

	data, err := output.PNGBytes(output.Upscale(img, req.Scale))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Pixels", strconv.Itoa(stats.TotalPixels))
	w.Header().Set("X-Render-Hits", strconv.Itoa(stats.HitPixels))
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
