package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-pinhole-raytracer/pkg/display"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
	"github.com/df07/go-pinhole-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene: built-in name, scene file name, or path to a .json file")
	scenesDir := flag.String("scenes", "scenes", "Directory containing JSON scene files")
	scale := flag.Int("scale", 1, "Window scale factor")
	flag.Parse()

	selectedScene, err := scene.CreateScene(*sceneType, *scenesDir)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	cameraConfig := selectedScene.GetCameraConfig()
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.Width = cameraConfig.Width
	renderConfig.Height = cameraConfig.Height

	raytracer, err := renderer.NewFrameRenderer(selectedScene, camera, renderConfig, renderer.NewDefaultLogger())
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	// The whole frame is rendered before the window is presented
	window := display.NewWindow("Raytracer", cameraConfig.Width, cameraConfig.Height, *scale)
	raytracer.Render(window)

	if err := window.Show(); err != nil {
		log.Printf("Window error: %v", err)
		os.Exit(1)
	}
}
