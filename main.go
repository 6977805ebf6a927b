package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/output"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	ScenesDir string
	Width     int
	Height    int
	Workers   int
	OutputDir string
	Scale     int
	Upload    bool
	EnvFile   string
}

func main() {
	var cfg Config
	fs, help := newFlagSet(&cfg)
	fs.Parse(os.Args[1:])

	if *help {
		printHelp(fs)
		return
	}

	fmt.Println("Starting Pinhole Raytracer...")

	if err := run(context.Background(), cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet binds command line options to cfg
func newFlagSet(cfg *Config) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet("raytracer", flag.ExitOnError)
	fs.StringVar(&cfg.SceneType, "scene", "default", "Scene: built-in name, scene file name in -scenes, or path to a .json file")
	fs.StringVar(&cfg.ScenesDir, "scenes", "scenes", "Directory containing JSON scene files")
	fs.IntVar(&cfg.Width, "width", 0, "Output width in pixels (0 = scene default)")
	fs.IntVar(&cfg.Height, "height", 0, "Output height in pixels (0 = scene default)")
	fs.IntVar(&cfg.Workers, "workers", 1, "Scanline workers (1 = sequential, 0 = CPU count)")
	fs.StringVar(&cfg.OutputDir, "out", "output", "Output directory")
	fs.IntVar(&cfg.Scale, "scale", 1, "Integer upscaling factor for the saved image")
	fs.BoolVar(&cfg.Upload, "upload", false, "Upload the rendered PNG to S3 (configured via environment or .env)")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Optional .env file with S3 settings")
	help := fs.Bool("help", false, "Show help information")
	return fs, help
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Pinhole Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	scenes, _ := scene.ListAllScenes(fs.Lookup("scenes").Value.String())
	for _, s := range scenes {
		fmt.Printf("  %-12s - %s\n", strings.TrimPrefix(s.ID, "file:"), s.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene resolves the scene and applies resolution overrides
func createScene(cfg Config) (*scene.Scene, error) {
	return scene.CreateScene(cfg.SceneType, cfg.ScenesDir, geometry.CameraConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
}

// newFrameRenderer builds the camera and renderer for a scene
func newFrameRenderer(s *scene.Scene, workers int) (*renderer.FrameRenderer, error) {
	cameraConfig := s.GetCameraConfig()
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.Width = cameraConfig.Width
	renderConfig.Height = cameraConfig.Height
	renderConfig.NumWorkers = workers

	return renderer.NewFrameRenderer(s, camera, renderConfig, renderer.NewDefaultLogger())
}

// sceneDirName turns a scene argument into a directory-safe name
func sceneDirName(sceneType string) string {
	name := strings.TrimPrefix(sceneType, "file:")
	name = strings.TrimSuffix(filepath.Base(name), ".json")
	return name
}

func run(ctx context.Context, cfg Config) error {
	selectedScene, err := createScene(cfg)
	if err != nil {
		return err
	}

	raytracer, err := newFrameRenderer(selectedScene, cfg.Workers)
	if err != nil {
		return err
	}

	img, stats, err := raytracer.RenderImage(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v (%.1f%% of pixels hit geometry, average luminance %.3f)\n",
		stats.Elapsed, 100*stats.HitRatio(), renderer.CalculateAverageLuminance(img))

	final := output.Upscale(img, cfg.Scale)

	name := sceneDirName(cfg.SceneType)
	filename := output.TimestampedPath(filepath.Join(cfg.OutputDir, name), "render", time.Now())
	if err := output.SavePNG(filename, final); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)

	if !cfg.Upload {
		return nil
	}

	s3Config, err := output.LoadS3Config(cfg.EnvFile)
	if err != nil {
		return fmt.Errorf("upload requested but S3 is not configured: %w", err)
	}
	uploader, err := output.NewS3Uploader(s3Config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}
	data, err := output.PNGBytes(final)
	if err != nil {
		return err
	}
	_, err = uploader.Upload(ctx, filepath.ToSlash(filepath.Join(name, filepath.Base(filename))), data)
	return err
}
