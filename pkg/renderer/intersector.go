package renderer

import "github.com/df07/go-pinhole-raytracer/pkg/core"

// FindClosestHit returns the nearest hit along the ray across all primitives.
// Candidates are compared by ray distance t; on equal distances the primitive
// that comes first in the slice wins.
func FindClosestHit(primitives []core.Primitive, ray core.Ray) core.HitRecord {
	closest := core.Miss()

	for _, primitive := range primitives {
		hit := primitive.Intersect(ray)
		if hit.Hit && hit.Distance < closest.Distance {
			closest = hit
			closest.Object = primitive
		}
	}

	return closest
}
