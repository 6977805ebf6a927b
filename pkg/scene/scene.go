package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/lights"
)

// ErrInvalidScene is returned when a scene cannot be rendered
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering.
// The scene owns its shapes; hit records only borrow them.
type Scene struct {
	Shapes       []geometry.Shape    // Objects in insertion order
	Light        *lights.PointLight  // The single point light
	CameraConfig geometry.CameraConfig
}

// New creates a scene and validates it
func New(light *lights.PointLight, cameraConfig geometry.CameraConfig, shapes ...geometry.Shape) (*Scene, error) {
	s := &Scene{
		Shapes:       make([]geometry.Shape, 0, len(shapes)),
		Light:        light,
		CameraConfig: cameraConfig,
	}
	s.Shapes = append(s.Shapes, shapes...)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every shape and the light
func (s *Scene) Validate() error {
	if s.Light == nil {
		return fmt.Errorf("%w: no light", ErrInvalidScene)
	}
	if err := s.Light.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	for i, shape := range s.Shapes {
		if shape == nil {
			return fmt.Errorf("%w: shape %d is nil", ErrInvalidScene, i)
		}
		if err := shape.Validate(); err != nil {
			return fmt.Errorf("%w: shape %d: %w", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// AddSphere adds a sphere to the end of the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, color core.Vec3) error {
	sphere := geometry.NewSphere(center, radius, color)
	if err := sphere.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	s.Shapes = append(s.Shapes, sphere)
	return nil
}

// GetPrimitives returns the shapes in insertion order
func (s *Scene) GetPrimitives() []core.Primitive {
	primitives := make([]core.Primitive, len(s.Shapes))
	for i, shape := range s.Shapes {
		primitives[i] = shape
	}
	return primitives
}

// GetLight returns the scene's light
func (s *Scene) GetLight() *lights.PointLight {
	return s.Light
}

// GetCameraConfig returns the camera and resolution for this scene
func (s *Scene) GetCameraConfig() geometry.CameraConfig {
	return s.CameraConfig
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
