package geometry

import (
	"fmt"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Eye               core.Vec3 `json:"eye"`               // World-space eye position
	ViewPlaneYSize    float64   `json:"viewPlaneYSize"`    // Film size along Y, in meters
	ViewPlaneDistance float64   `json:"viewPlaneDistance"` // Signed distance to the film along Z
	Width             int       `json:"width"`             // Output width in pixels
	Height            int       `json:"height"`            // Output height in pixels
}

// DefaultCameraConfig returns a camera at the world origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:               core.NewVec3(0, 0, 0),
		ViewPlaneYSize:    0.1,
		ViewPlaneDistance: -0.15,
		Width:             640,
		Height:            480,
	}
}

// MergeCameraConfig merges a partial camera config with defaults.
// Only non-zero values in the override replace values from base. A zero
// Eye counts as unset, so an override cannot move the eye to the world
// origin; build the CameraConfig directly (DefaultCameraConfig already has
// its eye there) when the origin is wanted.
func MergeCameraConfig(base CameraConfig, override CameraConfig) CameraConfig {
	result := base

	if !override.Eye.IsZero() {
		result.Eye = override.Eye
	}
	if override.ViewPlaneYSize != 0 {
		result.ViewPlaneYSize = override.ViewPlaneYSize
	}
	if override.ViewPlaneDistance != 0 {
		result.ViewPlaneDistance = override.ViewPlaneDistance
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}

	return result
}

// Camera is a pinhole camera mapping normalized screen coordinates to rays
type Camera struct {
	config         CameraConfig
	viewPlaneXSize float64
	viewPlaneYSize float64
}

// NewCamera creates a camera, rejecting configurations that cannot produce rays
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: resolution %dx%d must be positive", ErrInvalidCamera, config.Width, config.Height)
	}
	if !(config.ViewPlaneYSize > 0) {
		return nil, fmt.Errorf("%w: view plane size %f must be positive", ErrInvalidCamera, config.ViewPlaneYSize)
	}
	if config.ViewPlaneDistance == 0 {
		return nil, fmt.Errorf("%w: view plane distance must be non-zero", ErrInvalidCamera)
	}

	aspectRatio := float64(config.Width) / float64(config.Height)
	return &Camera{
		config:         config,
		viewPlaneXSize: aspectRatio * config.ViewPlaneYSize,
		viewPlaneYSize: config.ViewPlaneYSize,
	}, nil
}

// RayAtScreenSpace returns the ray through normalized screen coordinates
// x, y in [0,1]. Coordinate 0 maps to the film edge on the optical axis,
// not to the film center.
func (c *Camera) RayAtScreenSpace(x, y float64) core.Ray {
	direction := core.NewVec3(
		x*c.viewPlaneXSize,
		y*c.viewPlaneYSize,
		c.config.ViewPlaneDistance,
	)
	return core.NewRay(c.config.Eye, direction.Normalize())
}

// GetConfig returns the configuration the camera was built from
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// ViewPlaneSize returns the film size along X and Y
func (c *Camera) ViewPlaneSize() (x, y float64) {
	return c.viewPlaneXSize, c.viewPlaneYSize
}
