package renderer

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/lights"
)

// BackgroundColor is emitted for rays that hit nothing
var BackgroundColor = core.NewRGB(50, 50, 50)

// Shade computes the diffuse color at a hit lit by a single point light.
// It must only be called for hits. Surfaces facing away from the light,
// or exactly perpendicular to it, are black; there is no ambient term.
// Channels are truncated to integers and not clamped.
func Shade(hit core.HitRecord, light *lights.PointLight) core.RGB {
	normal := hit.Object.NormalAt(hit.Point).Normalize()

	toLight, _, attenuation := light.Illuminate(hit.Point)
	cosTheta := toLight.Dot(normal)
	if cosTheta <= 0 {
		return core.RGB{}
	}

	color := hit.Object.GetColor()
	return core.RGBFromVec3(core.NewVec3(
		color.X*cosTheta*attenuation*light.Intensity,
		color.Y*cosTheta*attenuation*light.Intensity,
		color.Z*cosTheta*attenuation*light.Intensity,
	))
}

// Shader shades hits and substitutes a background color for misses
type Shader struct {
	Light      *lights.PointLight
	Background core.RGB
}

// NewShader creates a shader with the default background
func NewShader(light *lights.PointLight) *Shader {
	return &Shader{Light: light, Background: BackgroundColor}
}

// Color returns the pixel color for a closest-hit result
func (s *Shader) Color(hit core.HitRecord) core.RGB {
	if !hit.Hit {
		return s.Background
	}
	return Shade(hit, s.Light)
}
