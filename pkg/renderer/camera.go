package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// ErrInvalidCamera is returned when a camera configuration cannot form a view basis
var ErrInvalidCamera = errors.New("invalid camera configuration")

// CameraConfig describes the viewpoint of a render
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	VFov   float64   // Vertical field of view in degrees
}

// Camera maps pixels to world-space primary rays. Row 0 is the top scanline.
type Camera struct {
	origin     core.Vec3
	upperLeft  core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	width      int
	height     int
}

// NewCamera creates a pinhole camera for an image of width × height pixels
func NewCamera(config CameraConfig, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidCamera, width, height)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("%w: vertical fov %.2f out of range (0, 180)", ErrInvalidCamera, config.VFov)
	}

	// Orthonormal basis: w points backwards, u right, v up
	w, err := config.Center.Subtract(config.LookAt).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: look-at point equals camera center: %w", ErrInvalidCamera, err)
	}
	u, err := config.Up.Cross(w).Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: up vector parallel to view direction: %w", ErrInvalidCamera, err)
	}
	v := w.Cross(u)

	viewportHeight := 2 * math.Tan(config.VFov*math.Pi/360)
	viewportWidth := viewportHeight * float64(width) / float64(height)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	upperLeft := config.Center.
		Subtract(w).
		Subtract(horizontal.Multiply(0.5)).
		Add(vertical.Multiply(0.5))

	return &Camera{
		origin:     config.Center,
		upperLeft:  upperLeft,
		horizontal: horizontal,
		vertical:   vertical,
		width:      width,
		height:     height,
	}, nil
}

// GetRay returns the unit-direction primary ray through the center of pixel (row, col)
func (c *Camera) GetRay(row, col int) (core.Ray, error) {
	s := (float64(col) + 0.5) / float64(c.width)
	t := (float64(row) + 0.5) / float64(c.height)

	direction, err := c.upperLeft.
		Add(c.horizontal.Multiply(s)).
		Subtract(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()
	if err != nil {
		return core.Ray{}, fmt.Errorf("primary ray for pixel (%d, %d): %w", row, col, err)
	}

	return core.NewRay(c.origin, direction), nil
}
