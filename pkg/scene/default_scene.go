package scene

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/lights"
)

// NewDefaultScene creates three small spheres lit from below, viewed from
// slightly in front of the world origin
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Eye:               core.NewVec3(0, 0, 0.5),
		ViewPlaneYSize:    0.1,
		ViewPlaneDistance: -0.5,
		Width:             640,
		Height:            480,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	light := lights.NewPointLight(core.NewVec3(0, -2, 0))

	return &Scene{
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0.5, 0.8, -8), 0.5, core.NewVec3(100, 100, 0)),
			geometry.NewSphere(core.NewVec3(1.9, 0.3, -9.8), 0.5, core.NewVec3(0, 100, 0)),
			geometry.NewSphere(core.NewVec3(0.9, 0.8, -7.5), 0.5, core.NewVec3(0, 100, 55)),
		},
		Light:        light,
		CameraConfig: cameraConfig,
	}
}

// NewSphereRowScene creates a row of spheres receding from the camera, so
// nearer spheres occlude farther ones along the same rays
func NewSphereRowScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	light := lights.NewPointLight(core.NewVec3(1, 1, -2))

	s := &Scene{
		Shapes:       make([]geometry.Shape, 0, 5),
		Light:        light,
		CameraConfig: cameraConfig,
	}

	colors := []core.Vec3{
		core.NewVec3(200, 40, 40),
		core.NewVec3(40, 200, 40),
		core.NewVec3(40, 40, 200),
		core.NewVec3(200, 200, 40),
		core.NewVec3(200, 40, 200),
	}
	for i, color := range colors {
		depth := float64(i)
		s.Shapes = append(s.Shapes, geometry.NewSphere(
			core.NewVec3(0.3+0.25*depth, 0.2+0.1*depth, -3-1.5*depth),
			0.4,
			color,
		))
	}

	return s
}
