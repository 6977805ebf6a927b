package geometry

import (
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Sphere represents a sphere shape with a flat diffuse color
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Vec3 // RGB in [0,255] channel units
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Intersect tests the ray against the sphere and returns the entry point.
// The ray direction must be unit length. Only the near root is considered:
// a ray starting inside the sphere (near root behind the origin) is a miss.
func (s *Sphere) Intersect(ray core.Ray) core.HitRecord {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// With a unit direction the quadratic reduces to t² + 2bt + (oc·oc - r²) = 0
	b := ray.Direction.Dot(oc)
	discriminant := b*b - oc.Dot(oc) + s.Radius*s.Radius

	if discriminant < 0 {
		return core.HitRecord{Hit: false}
	}

	t := -b - math.Sqrt(discriminant)
	if t < 0 {
		return core.HitRecord{Hit: false}
	}

	return core.HitRecord{
		Point:    ray.At(t),
		Hit:      true,
		Distance: t,
		Object:   s,
	}
}

// NormalAt returns point - center; the result is not unit length
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center)
}

// GetColor returns the sphere's diffuse color
func (s *Sphere) GetColor() core.Vec3 {
	return s.Color
}

// Validate reports whether the sphere is renderable
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) {
		return &InvalidShapeError{Shape: "sphere", Reason: "radius must be positive"}
	}
	return nil
}
