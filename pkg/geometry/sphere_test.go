package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(100, 100, 0))
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit := sphere.Intersect(ray)
	if hit.Hit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.Distance)
	}
}

func TestSphere_Intersect_Frontal(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Vec3
		radius    float64
		rayOrigin core.Vec3
	}{
		{"origin to -Z", core.NewVec3(0, 0, -8), 0.5, core.NewVec3(0, 0, 0)},
		{"offset origin", core.NewVec3(0, 0, -8), 0.5, core.NewVec3(0, 0, 0.5)},
		{"from +Z", core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0, 0, 2)},
		{"off axis", core.NewVec3(1, 2, 3), 0.75, core.NewVec3(-3, 5, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, core.NewVec3(0, 100, 0))
			direction := tt.center.Subtract(tt.rayOrigin).Normalize()
			ray := core.NewRay(tt.rayOrigin, direction)

			hit := sphere.Intersect(ray)
			if !hit.Hit {
				t.Fatal("Expected hit, but got miss")
			}

			expectedT := tt.rayOrigin.Subtract(tt.center).Length() - tt.radius
			if math.Abs(hit.Distance-expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", expectedT, hit.Distance)
			}

			expectedPoint := ray.At(expectedT)
			if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
				t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
			}

			if hit.Object != sphere {
				t.Errorf("Expected hit object to be the sphere, got %v", hit.Object)
			}
		})
	}
}

func TestSphere_Intersect_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0, 0, 0))
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit := sphere.Intersect(ray)
	if !hit.Hit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.NewVec3(0, 0, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit := sphere.Intersect(ray); hit.Hit {
		t.Errorf("Expected miss for sphere behind the ray, got hit at t=%f", hit.Distance)
	}
}

func TestSphere_Intersect_OriginInsideIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewVec3(0, 0, 0))

	// The far root at t=1 is deliberately not used
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if hit := sphere.Intersect(ray); hit.Hit {
		t.Errorf("Expected miss from inside the sphere, got hit at t=%f", hit.Distance)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, core.NewVec3(0, 0, 0))

	points := []core.Vec3{
		core.NewVec3(3, 2, 3),
		core.NewVec3(1, 2, 1),
		core.NewVec3(10, -4, 0.5),
	}

	for _, p := range points {
		normal := sphere.NormalAt(p)
		expected := p.Subtract(sphere.Center)
		if normal != expected {
			t.Errorf("NormalAt(%v): expected %v, got %v", p, expected, normal)
		}
	}

	// Not normalized: a point on a radius-2 sphere yields length 2
	if l := sphere.NormalAt(core.NewVec3(3, 2, 3)).Length(); l != 2 {
		t.Errorf("Expected unnormalized length 2, got %f", l)
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{"positive", 0.5, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, core.NewVec3(0, 0, 0)).Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%t, got %v", tt.wantErr, err)
			}
			var shapeErr *InvalidShapeError
			if err != nil && !errors.As(err, &shapeErr) {
				t.Errorf("Expected *InvalidShapeError, got %T", err)
			}
		})
	}
}
