package core

import "math"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Primitive is anything a ray can be intersected with and shaded.
// Sphere is the only implementation today.
type Primitive interface {
	// Intersect returns the entry hit of the ray, or a record with Hit == false
	Intersect(ray Ray) HitRecord
	// NormalAt returns the outward surface direction at point, not normalized
	NormalAt(point Vec3) Vec3
	// GetColor returns the flat diffuse color in [0,255] channel units
	GetColor() Vec3
}

// HitRecord contains information about a ray-primitive intersection.
// When Hit is false the other fields carry no meaning.
type HitRecord struct {
	Point    Vec3      // World-space intersection position
	Hit      bool      // Whether the ray hit anything
	Distance float64   // Parameter t along the ray, >= 0 for a hit
	Object   Primitive // Hit primitive, owned by the scene
}

// Miss returns a no-hit record with infinite distance
func Miss() HitRecord {
	return HitRecord{Hit: false, Distance: math.Inf(1)}
}
