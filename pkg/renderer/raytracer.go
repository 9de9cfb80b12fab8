package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/material"
)

// Ray parameter bounds for primary and shadow rays
const (
	tMinEpsilon = 0.001
)

// Scene interface to avoid circular imports
type Scene interface {
	GetWidth() int
	GetHeight() int
	GetCameraConfig() CameraConfig
	GetBackground() core.Vec3
	GetShapes() []core.Shape
	GetLights() []core.Light
}

// Raytracer computes the color seen along a ray. It only reads the scene and is
// safe for concurrent use by any number of workers.
type Raytracer struct {
	shapes     []core.Shape
	lights     []core.Light
	background core.Vec3
}

// NewRaytracer creates a new raytracer over a snapshot of the scene's shapes and lights
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		shapes:     scene.GetShapes(),
		lights:     scene.GetLights(),
		background: scene.GetBackground(),
	}
}

// hitWorld checks if a ray hits any object in the scene and returns the closest hit
func (rt *Raytracer) hitWorld(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, shape := range rt.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// occluded reports whether anything blocks the path from point toward the light
func (rt *Raytracer) occluded(point core.Vec3, ill core.Illumination) bool {
	shadowRay := core.NewRay(point, ill.Direction)
	for _, shape := range rt.shapes {
		if _, isHit := shape.Hit(shadowRay, tMinEpsilon, ill.Distance); isHit {
			return true
		}
	}
	return false
}

// RayColor returns the color for a primary ray, clamped to [0,1].
// Misses return the background. Hits always receive the material's ambient term,
// so geometry stays visible in a scene without lights.
func (rt *Raytracer) RayColor(ray core.Ray) (core.Vec3, error) {
	hit, isHit := rt.hitWorld(ray, tMinEpsilon, math.Inf(1))
	if !isHit {
		return rt.background, nil
	}

	toViewer, err := ray.Direction.Negate().Normalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("view direction: %w", err)
	}

	color := material.Ambient(hit.Material)
	for i, light := range rt.lights {
		ill, err := light.Illuminate(hit.Point)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("light %d: %w", i, err)
		}
		if rt.occluded(hit.Point, ill) {
			continue
		}
		color = color.Add(material.Direct(hit.Material, hit.Normal, toViewer, ill))
	}

	return color.Clamp(0, 1), nil
}

// vec3ToRGB quantizes a [0,1] color to 8 bits per channel
func vec3ToRGB(colorVec core.Vec3) [3]byte {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return [3]byte{
		uint8(255*colorVec.X + 0.5),
		uint8(255*colorVec.Y + 0.5),
		uint8(255*colorVec.Z + 0.5),
	}
}
