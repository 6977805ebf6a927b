package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/lights"
)

var (
	// ErrInvalidResolution is returned for non-positive output sizes and for
	// output sizes that disagree with the camera's resolution
	ErrInvalidResolution = errors.New("invalid resolution")
	// ErrNoLight is returned for scenes without a light
	ErrNoLight = errors.New("scene has no light")
)

// Scene interface to avoid circular imports
type Scene interface {
	GetPrimitives() []core.Primitive
	GetLight() *lights.PointLight
}

// RenderConfig contains frame configuration
type RenderConfig struct {
	Width      int      // Output width in pixels
	Height     int      // Output height in pixels
	NumWorkers int      // Scanline workers for RenderParallel (0 = CPU count)
	Background core.RGB // Color for pixels whose ray hits nothing
}

// DefaultRenderConfig returns a single-worker 640x480 configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      640,
		Height:     480,
		NumWorkers: 1,
		Background: BackgroundColor,
	}
}

// FrameRenderer casts one ray per pixel and hands the shaded colors to a sink
type FrameRenderer struct {
	camera     *geometry.Camera
	config     RenderConfig
	primitives []core.Primitive
	shader     *Shader
	logger     core.Logger
}

// NewFrameRenderer creates a renderer for a scene and camera. The scene is
// read once here and must not be mutated while frames are rendering.
func NewFrameRenderer(scene Scene, camera *geometry.Camera, config RenderConfig, logger core.Logger) (*FrameRenderer, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, config.Width, config.Height)
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: no camera", geometry.ErrInvalidCamera)
	}
	if cc := camera.GetConfig(); cc.Width != config.Width || cc.Height != config.Height {
		return nil, fmt.Errorf("%w: output %dx%d does not match camera %dx%d",
			ErrInvalidResolution, config.Width, config.Height, cc.Width, cc.Height)
	}
	light := scene.GetLight()
	if light == nil {
		return nil, ErrNoLight
	}
	if logger == nil {
		logger = discardLogger{}
	}

	shader := NewShader(light)
	shader.Background = config.Background

	return &FrameRenderer{
		camera:     camera,
		config:     config,
		primitives: scene.GetPrimitives(),
		shader:     shader,
		logger:     logger,
	}, nil
}

// GetConfig returns the renderer configuration
func (fr *FrameRenderer) GetConfig() RenderConfig {
	return fr.config
}

// screenSpace maps a pixel to normalized screen coordinates in [0,1)
func (fr *FrameRenderer) screenSpace(col, row int) (x, y float64) {
	xRatio := 1.0 / float64(fr.config.Width)
	yRatio := 1.0 / float64(fr.config.Height)
	return xRatio * float64(col), yRatio * float64(row)
}

// RayAt returns the camera ray through pixel (col, row)
func (fr *FrameRenderer) RayAt(col, row int) core.Ray {
	x, y := fr.screenSpace(col, row)
	return fr.camera.RayAtScreenSpace(x, y)
}

// TracePixel casts the ray through one pixel and returns its closest hit
// together with the shaded color
func (fr *FrameRenderer) TracePixel(col, row int) (core.HitRecord, core.RGB) {
	hit := FindClosestHit(fr.primitives, fr.RayAt(col, row))
	return hit, fr.shader.Color(hit)
}

// RenderPixel computes the color of one pixel and whether its ray hit anything
func (fr *FrameRenderer) RenderPixel(col, row int) (core.RGB, bool) {
	hit, color := fr.TracePixel(col, row)
	return color, hit.Hit
}

// Render computes every pixel left to right, top to bottom on the calling
// goroutine, emitting each to sink as soon as it is shaded
func (fr *FrameRenderer) Render(sink PixelSink) RenderStats {
	start := time.Now()
	fr.logger.Printf("Rendering %dx%d frame (%d primitives)...\n", fr.config.Width, fr.config.Height, len(fr.primitives))

	stats := RenderStats{
		TotalPixels: fr.config.Width * fr.config.Height,
		Workers:     1,
	}
	for row := 0; row < fr.config.Height; row++ {
		for col := 0; col < fr.config.Width; col++ {
			color, hit := fr.RenderPixel(col, row)
			if hit {
				stats.HitPixels++
			}
			sink.SetPixel(col, row, color)
		}
	}

	return fr.finish(stats, start)
}

// RenderParallel computes scanlines on the configured number of workers into
// a frame buffer, then emits the whole frame to sink in raster order. Output
// is identical to Render. With a single worker it is Render.
func (fr *FrameRenderer) RenderParallel(ctx context.Context, sink PixelSink) (RenderStats, error) {
	pool := NewScanlinePool(fr.config.NumWorkers)
	if pool.GetNumWorkers() == 1 {
		return fr.Render(sink), nil
	}

	start := time.Now()
	fr.logger.Printf("Rendering %dx%d frame (%d primitives) on %d workers...\n",
		fr.config.Width, fr.config.Height, len(fr.primitives), pool.GetNumWorkers())

	frame := NewFrameBuffer(fr.config.Width, fr.config.Height)
	rowHits := make([]int, fr.config.Height)

	err := pool.Run(ctx, fr.config.Height, func(row int) {
		pixels := frame.Row(row)
		for col := range pixels {
			color, hit := fr.RenderPixel(col, row)
			if hit {
				rowHits[row]++
			}
			pixels[col] = color
		}
	})
	if err != nil {
		return RenderStats{}, fmt.Errorf("render cancelled: %w", err)
	}

	frame.Flush(sink)

	stats := RenderStats{
		TotalPixels: fr.config.Width * fr.config.Height,
		Workers:     pool.GetNumWorkers(),
	}
	for _, hits := range rowHits {
		stats.HitPixels += hits
	}
	return fr.finish(stats, start), nil
}

// RenderImage renders a frame into a new RGBA image
func (fr *FrameRenderer) RenderImage(ctx context.Context) (*image.RGBA, RenderStats, error) {
	sink := NewImageSink(fr.config.Width, fr.config.Height)
	stats, err := fr.RenderParallel(ctx, sink)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return sink.Image(), stats, nil
}

func (fr *FrameRenderer) finish(stats RenderStats, start time.Time) RenderStats {
	stats.MissPixels = stats.TotalPixels - stats.HitPixels
	stats.Elapsed = time.Since(start)
	fr.logger.Printf("done in %v (%d hit, %d background)\n", stats.Elapsed, stats.HitPixels, stats.MissPixels)
	return stats
}
