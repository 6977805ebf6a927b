package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/lights"
)

// SphereFile describes one sphere in a scene file
type SphereFile struct {
	Center core.Vec3 `json:"center"`
	Radius float64   `json:"radius"`
	Color  core.Vec3 `json:"color"`
}

// LightFile describes the point light in a scene file
type LightFile struct {
	Position  core.Vec3  `json:"position"`
	Color     *core.Vec3 `json:"color,omitempty"`
	Intensity *float64   `json:"intensity,omitempty"` // defaults to lights.DefaultIntensity
}

// File is the JSON representation of a scene
type File struct {
	Name        string                `json:"name,omitempty"`
	Description string                `json:"description,omitempty"`
	Camera      geometry.CameraConfig `json:"camera"`
	Light       *LightFile            `json:"light"`
	Spheres     []SphereFile          `json:"spheres"`
}

// LoadSceneFile reads a JSON scene description from disk
func LoadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	s, err := DecodeScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DecodeScene parses and validates a JSON scene description.
// Camera fields left out fall back to geometry.DefaultCameraConfig.
func DecodeScene(r io.Reader) (*Scene, error) {
	var file File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return file.Build()
}

// Build converts the file representation into a validated scene
func (f *File) Build() (*Scene, error) {
	if f.Light == nil {
		return nil, fmt.Errorf("%w: no light", ErrInvalidScene)
	}

	light := lights.NewPointLight(f.Light.Position)
	if f.Light.Color != nil {
		light.Color = *f.Light.Color
	}
	if f.Light.Intensity != nil {
		light.Intensity = *f.Light.Intensity
	}

	shapes := make([]geometry.Shape, 0, len(f.Spheres))
	for _, sf := range f.Spheres {
		shapes = append(shapes, geometry.NewSphere(sf.Center, sf.Radius, sf.Color))
	}

	cameraConfig := geometry.MergeCameraConfig(geometry.DefaultCameraConfig(), f.Camera)
	return New(light, cameraConfig, shapes...)
}
