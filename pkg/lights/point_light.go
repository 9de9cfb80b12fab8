package lights

import (
	"fmt"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// PointLight emits light equally in all directions from a single position.
// Radiance does not fall off with distance.
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// Illuminate returns the direction, distance and radiance of the light as seen from point
func (pl *PointLight) Illuminate(point core.Vec3) (core.Illumination, error) {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()
	direction, err := toLight.Normalize()
	if err != nil {
		return core.Illumination{}, fmt.Errorf("point light at %v coincides with surface point: %w", pl.Position, err)
	}

	return core.Illumination{
		Direction: direction,
		Distance:  distance,
		Radiance:  pl.Color.Multiply(pl.Intensity),
	}, nil
}
