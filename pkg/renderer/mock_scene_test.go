package renderer

import (
	"errors"

	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/geometry"
	"github.com/df07/go-strip-raytracer/pkg/lights"
	"github.com/df07/go-strip-raytracer/pkg/material"
)

// MockScene for renderer testing
type MockScene struct {
	width      int
	height     int
	camera     CameraConfig
	background core.Vec3
	shapes     []core.Shape
	lights     []core.Light
}

func (m *MockScene) GetWidth() int                 { return m.width }
func (m *MockScene) GetHeight() int                { return m.height }
func (m *MockScene) GetCameraConfig() CameraConfig { return m.camera }
func (m *MockScene) GetBackground() core.Vec3      { return m.background }
func (m *MockScene) GetShapes() []core.Shape       { return m.shapes }
func (m *MockScene) GetLights() []core.Light       { return m.lights }

var errLightFailed = errors.New("light failed")

// failingLight always fails to illuminate, standing in for a worker precondition failure
type failingLight struct{}

func (failingLight) Illuminate(core.Vec3) (core.Illumination, error) {
	return core.Illumination{}, errLightFailed
}

func defaultTestCamera() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   60,
	}
}

// createEmptyScene creates a scene with no shapes or lights
func createEmptyScene(width, height int, background core.Vec3) *MockScene {
	return &MockScene{
		width:      width,
		height:     height,
		camera:     defaultTestCamera(),
		background: background,
	}
}

// createMockScene creates a small lit scene with spheres and a floor rectangle
func createMockScene(width, height int) *MockScene {
	floor, err := geometry.NewRectangle(
		core.NewVec3(-3, -1, 0), core.NewVec3(6, 0, 0), core.NewVec3(0, 0, -6),
		material.NewMatte(core.NewVec3(0.6, 0.6, 0.6)))
	if err != nil {
		panic(err)
	}
	sun, err := lights.NewDirectionalLight(core.NewVec3(-1, -1, -0.5), core.NewVec3(1, 1, 1), 0.4)
	if err != nil {
		panic(err)
	}

	return &MockScene{
		width:      width,
		height:     height,
		camera:     defaultTestCamera(),
		background: core.NewVec3(0, 0.1, 0.1),
		shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewGlossy(core.NewVec3(0.8, 0.2, 0.2))),
			geometry.NewSphere(core.NewVec3(1.5, -0.5, -2.5), 0.5, material.NewMatte(core.NewVec3(0.2, 0.8, 0.2))),
			floor,
		},
		lights: []core.Light{
			lights.NewPointLight(core.NewVec3(2, 3, 0), core.NewVec3(1, 1, 1), 0.8),
			sun,
		},
	}
}
