package scene

import (
	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/geometry"
	"github.com/df07/go-strip-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// Primitives live in flat arenas built before a render; nothing mutates them while
// workers read the scene.
type Scene struct {
	Width      int                   // Image width in pixels
	Height     int                   // Image height in pixels
	Camera     renderer.CameraConfig // Viewpoint
	Background core.Vec3             // Color of rays that hit nothing
	Lights     []core.Light
	Rectangles []*geometry.Rectangle
	Spheres    []*geometry.Sphere
}

// GetWidth returns the image width
func (s *Scene) GetWidth() int { return s.Width }

// GetHeight returns the image height
func (s *Scene) GetHeight() int { return s.Height }

// GetCameraConfig returns the viewpoint
func (s *Scene) GetCameraConfig() renderer.CameraConfig { return s.Camera }

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Vec3 { return s.Background }

// GetLights returns the scene lights
func (s *Scene) GetLights() []core.Light { return s.Lights }

// GetShapes returns spheres followed by rectangles as one slice of shapes
func (s *Scene) GetShapes() []core.Shape {
	shapes := make([]core.Shape, 0, len(s.Spheres)+len(s.Rectangles))
	for _, sphere := range s.Spheres {
		shapes = append(shapes, sphere)
	}
	for _, rect := range s.Rectangles {
		shapes = append(shapes, rect)
	}
	return shapes
}

// NewEmptyScene creates a scene with no primitives or lights
func NewEmptyScene(width, height int, background core.Vec3) *Scene {
	return &Scene{
		Width:  width,
		Height: height,
		Camera: renderer.CameraConfig{
			Center: core.NewVec3(0, 0, 0),
			LookAt: core.NewVec3(0, 0, -1),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   60,
		},
		Background: background,
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(sphere *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// AddRectangle appends a rectangle to the scene
func (s *Scene) AddRectangle(rect *geometry.Rectangle) {
	s.Rectangles = append(s.Rectangles, rect)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light core.Light) {
	s.Lights = append(s.Lights, light)
}
