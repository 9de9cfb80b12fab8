package scene

import (
	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/geometry"
	"github.com/df07/go-strip-raytracer/pkg/lights"
	"github.com/df07/go-strip-raytracer/pkg/material"
	"github.com/df07/go-strip-raytracer/pkg/renderer"
)

// Default image resolution; 512 rows admit worker counts 1, 2, 4, ... 512
const (
	DefaultWidth  = 512
	DefaultHeight = 512
)

// DefaultBackground is the dark teal the built-in scenes use for misses
var DefaultBackground = core.NewVec3(0, 0.1, 0.1)

// NewDefaultScene creates a box of three walls with three spheres and two point lights
func NewDefaultScene() *Scene {
	s := &Scene{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(0, 1.5, 6),
			LookAt: core.NewVec3(0, 1, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   45,
		},
		Background: DefaultBackground,
	}

	// Walls: floor, back and left, open toward the camera
	walls := []struct {
		corner, u, v core.Vec3
		color        core.Vec3
	}{
		{core.NewVec3(-3, 0, 3), core.NewVec3(6, 0, 0), core.NewVec3(0, 0, -6), core.NewVec3(0.7, 0.7, 0.7)},
		{core.NewVec3(-3, 0, -3), core.NewVec3(6, 0, 0), core.NewVec3(0, 4, 0), core.NewVec3(0.3, 0.4, 0.8)},
		{core.NewVec3(-3, 0, 3), core.NewVec3(0, 0, -6), core.NewVec3(0, 4, 0), core.NewVec3(0.8, 0.3, 0.3)},
	}
	for _, w := range walls {
		rect, err := geometry.NewRectangle(w.corner, w.u, w.v, material.NewMatte(w.color))
		if err != nil {
			// Fixed geometry above is never degenerate
			panic(err)
		}
		s.AddRectangle(rect)
	}

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewGlossy(core.NewVec3(0.9, 0.8, 0.2))))
	s.AddSphere(geometry.NewSphere(core.NewVec3(1.8, 0.6, 1), 0.6, material.NewGlossy(core.NewVec3(0.2, 0.7, 0.9))))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1.5, 0.4, 1.5), 0.4, material.NewMatte(core.NewVec3(0.3, 0.9, 0.3))))

	s.AddLight(lights.NewPointLight(core.NewVec3(2, 3.5, 3), core.NewVec3(1, 1, 1), 0.7))
	s.AddLight(lights.NewPointLight(core.NewVec3(-2, 3, 2), core.NewVec3(1, 0.9, 0.8), 0.4))

	return s
}

// NewSingleSphereScene creates one sphere filling the frame, unlit, on black
func NewSingleSphereScene(width, height int) *Scene {
	s := NewEmptyScene(width, height, core.Vec3{})
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -3), 2.5, material.NewMatte(core.NewVec3(1, 1, 1))))
	return s
}
