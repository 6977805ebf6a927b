package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const twoSpheresJSON = `{
  "name": "Two Spheres",
  "camera": {"width": 64, "height": 48},
  "light": {"position": {"x": 0, "y": 0, "z": 2}},
  "spheres": [
    {"center": {"x": 0, "y": 0, "z": -3}, "radius": 0.5, "color": {"x": 200, "y": 0, "z": 0}},
    {"center": {"x": 0, "y": 0, "z": -6}, "radius": 1.0, "color": {"x": 0, "y": 0, "z": 200}}
  ]
}`

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "two-spheres.json"), []byte(twoSpheresJSON), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return NewServer(0, dir), dir
}

func serve(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleRender_ReturnsPNG(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/render?scene=default&width=32&height=24&workers=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if px := rec.Header().Get("X-Render-Pixels"); px != "768" {
		t.Errorf("Expected 768 rendered pixels, got %q", px)
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleRender_Scale(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/render?scene=file:two-spheres&scale=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 96 {
		t.Errorf("Expected 128x96 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	s, _ := newTestServer(t)
	testCases := []struct {
		name   string
		target string
	}{
		{"Non-numeric width", "/api/render?width=abc"},
		{"Width too large", "/api/render?width=5000"},
		{"Negative workers", "/api/render?workers=-1"},
		{"Zero scale", "/api/render?scale=0"},
		{"Unknown scene", "/api/render?scene=no-such-scene"},
		{"Upscaled width too large", "/api/render?width=2000&height=100&scale=8"},
		{"Upscaled height too large", "/api/render?width=100&height=1001&scale=4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, s, tc.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleInspect(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/inspect?scene=file:two-spheres&x=0&y=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	// Pixel (0,0) looks straight down -Z, so the near sphere occludes the far one
	if !resp.Hit {
		t.Fatal("Expected pixel (0,0) to hit")
	}
	if resp.ObjectIndex != 0 {
		t.Errorf("Expected object 0, got %d", resp.ObjectIndex)
	}
	if resp.GeometryType != "sphere" {
		t.Errorf("Expected sphere, got %q", resp.GeometryType)
	}
	if math.Abs(resp.Distance-2.5) > 1e-9 {
		t.Errorf("Expected distance 2.5, got %f", resp.Distance)
	}
	if math.Abs(resp.Normal[2]-1) > 1e-9 {
		t.Errorf("Expected normal facing +Z, got %v", resp.Normal)
	}

	// Light 4.5 away, head-on: 200 * 70 / (1 + 0.45 + 2.025) truncates to 4028
	if resp.Color != [3]int{4028, 0, 0} {
		t.Errorf("Expected color (4028,0,0), got %v", resp.Color)
	}
}

func TestHandleInspect_Miss(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/inspect?scene=file:two-spheres&x=63&y=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if resp.Hit || resp.ObjectIndex != -1 {
		t.Errorf("Expected a miss, got hit=%t object=%d", resp.Hit, resp.ObjectIndex)
	}
	if resp.Color != [3]int{50, 50, 50} {
		t.Errorf("Expected background color, got %v", resp.Color)
	}
}

func TestHandleInspect_OutOfBounds(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/inspect?scene=file:two-spheres&x=64&y=0")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for x outside the 64px frame, got %d", rec.Code)
	}
}

func TestHandleScenes(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Scenes []struct {
			ID   string `json:"id"`
			Type string `json:"type"`
		} `json:"scenes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}

	ids := map[string]bool{}
	for _, sc := range body.Scenes {
		ids[sc.ID] = true
	}
	for _, want := range []string{"default", "sphere-row", "file:two-spheres"} {
		if !ids[want] {
			t.Errorf("Expected scene %q in listing, got %v", want, ids)
		}
	}
}

func TestHandleSceneConfig(t *testing.T) {
	s, _ := newTestServer(t)
	rec := serve(t, s, "/api/scene-config?scene=file:two-spheres")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Primitives int `json:"primitives"`
		Camera     struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"camera"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Primitives != 2 {
		t.Errorf("Expected 2 primitives, got %d", body.Primitives)
	}
	if body.Camera.Width != 64 || body.Camera.Height != 48 {
		t.Errorf("Expected 64x48 camera, got %dx%d", body.Camera.Width, body.Camera.Height)
	}
}

func TestHandleConsole_CollectsRenderLog(t *testing.T) {
	s, _ := newTestServer(t)
	if rec := serve(t, s, "/api/render?width=8&height=6"); rec.Code != http.StatusOK {
		t.Fatalf("Render failed: %d", rec.Code)
	}

	rec := serve(t, s, "/api/console")
	var body struct {
		Messages []ConsoleMessage `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body.Messages) == 0 {
		t.Error("Expected render log messages in console")
	}
}
