package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// ErrInvalidCamera is returned for camera configurations that cannot produce rays
var ErrInvalidCamera = errors.New("invalid camera")

// Shape is a primitive that can check its own parameters before rendering
type Shape interface {
	core.Primitive
	Validate() error
}

// InvalidShapeError describes a degenerate shape
type InvalidShapeError struct {
	Shape  string
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Shape, e.Reason)
}
