package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// DirectionalLight is a light at infinity shining along a fixed direction
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction the light travels in
	Color     core.Vec3
	Intensity float64
}

// NewDirectionalLight creates a directional light travelling along direction
func NewDirectionalLight(direction, color core.Vec3, intensity float64) (*DirectionalLight, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("directional light: %w", err)
	}
	return &DirectionalLight{
		Direction: unit,
		Color:     color,
		Intensity: intensity,
	}, nil
}

// Illuminate returns the illumination at point; the result is the same everywhere
func (dl *DirectionalLight) Illuminate(point core.Vec3) (core.Illumination, error) {
	return core.Illumination{
		Direction: dl.Direction.Negate(),
		Distance:  math.Inf(1),
		Radiance:  dl.Color.Multiply(dl.Intensity),
	}, nil
}
