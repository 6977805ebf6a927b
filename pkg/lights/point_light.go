package lights

import (
	"fmt"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// DefaultIntensity is the scalar multiplier applied when none is configured
const DefaultIntensity = 70.0

// PointLight is an infinitely small light source
type PointLight struct {
	Position  core.Vec3 `json:"position"`
	Color     core.Vec3 `json:"color"`     // Carried for scene descriptions; diffuse shading ignores it
	Intensity float64   `json:"intensity"` // Scalar multiplier on shaded channels
}

// NewPointLight creates a white point light with the default intensity
func NewPointLight(position core.Vec3) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     core.NewVec3(255, 255, 255),
		Intensity: DefaultIntensity,
	}
}

// Attenuation returns the inverse-quadratic falloff at the given distance.
// The constant term keeps the factor finite at distance 0.
func Attenuation(distance float64) float64 {
	return 1 / (1 + 0.1*distance + 0.1*distance*distance)
}

// Illuminate returns the unit direction towards the light from point,
// the distance to the light and the attenuation at that distance
func (pl *PointLight) Illuminate(point core.Vec3) (direction core.Vec3, distance, attenuation float64) {
	toLight := pl.Position.Subtract(point)
	distance = toLight.Length()
	return toLight.Normalize(), distance, Attenuation(distance)
}

// Validate reports whether the light can illuminate anything
func (pl *PointLight) Validate() error {
	if pl.Intensity < 0 {
		return fmt.Errorf("light intensity %f must not be negative", pl.Intensity)
	}
	return nil
}
