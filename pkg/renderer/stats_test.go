package renderer

import (
	"image"
	"image/color"
	"testing"
)

func TestRenderStats_HitRatio(t *testing.T) {
	testCases := []struct {
		name     string
		stats    RenderStats
		expected float64
	}{
		{"Empty frame", RenderStats{}, 0},
		{"All hits", RenderStats{TotalPixels: 4, HitPixels: 4}, 1},
		{"Quarter hits", RenderStats{TotalPixels: 8, HitPixels: 2, MissPixels: 6}, 0.25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.stats.HitRatio(); got != tc.expected {
				t.Errorf("Expected hit ratio %f, got %f", tc.expected, got)
			}
		})
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722, black 0 average to 0.25
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_Unrendered(t *testing.T) {
	// A frame never written stays at the red marker
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	FillRGBA(img, UnrenderedColor)

	avgLum := CalculateAverageLuminance(img)
	if avgLum < 0.2125 || avgLum > 0.2127 {
		t.Errorf("Expected red luminance 0.2126, got %f", avgLum)
	}
}

func TestCalculateAverageLuminance_Empty(t *testing.T) {
	if got := CalculateAverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != 0 {
		t.Errorf("Expected 0 for empty image, got %f", got)
	}
}
