package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-strip-raytracer/pkg/core"
	"github.com/df07/go-strip-raytracer/pkg/geometry"
	"github.com/df07/go-strip-raytracer/pkg/lights"
	"github.com/df07/go-strip-raytracer/pkg/material"
	"github.com/df07/go-strip-raytracer/pkg/renderer"
)

// ErrInvalidScene is returned when a scene description fails validation
var ErrInvalidScene = errors.New("invalid scene")

// MaxImageDimension caps the width and height a scene description may request
const MaxImageDimension = 16384

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// CameraCfg is the JSON form of renderer.CameraConfig
type CameraCfg struct {
	Center Vec3Cfg `json:"center"`
	LookAt Vec3Cfg `json:"lookAt"`
	Up     Vec3Cfg `json:"up"`
	VFov   float64 `json:"vfov"`
}

// MaterialCfg holds Phong parameters; weights are clamped to [0,1] when built
type MaterialCfg struct {
	Color     Vec3Cfg `json:"color"`
	Ambient   float64 `json:"ambient"`
	Diffuse   float64 `json:"diffuse"`
	Specular  float64 `json:"specular,omitempty"`
	Shininess float64 `json:"shininess,omitempty"`
}

// LightCfg describes a point light (Position) or a directional light (Direction)
type LightCfg struct {
	Type      string  `json:"type"` // "point" or "directional"
	Position  Vec3Cfg `json:"position,omitempty"`
	Direction Vec3Cfg `json:"direction,omitempty"`
	Color     Vec3Cfg `json:"color"`
	Intensity float64 `json:"intensity"`
}

// SphereCfg describes a sphere with a positive radius
type SphereCfg struct {
	Center   Vec3Cfg     `json:"center"`
	Radius   float64     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

// RectangleCfg describes a parallelogram from one corner and two edge vectors
type RectangleCfg struct {
	Corner   Vec3Cfg     `json:"corner"`
	U        Vec3Cfg     `json:"u"`
	V        Vec3Cfg     `json:"v"`
	Material MaterialCfg `json:"material"`
}

// Config is the JSON form of a scene
type Config struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background Vec3Cfg        `json:"background"`
	Camera     CameraCfg      `json:"camera"`
	Lights     []LightCfg     `json:"lights,omitempty"`
	Spheres    []SphereCfg    `json:"spheres,omitempty"`
	Rectangles []RectangleCfg `json:"rectangles,omitempty"`
}

// Load reads a Scene from a JSON file
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads and validates a JSON scene description
func Decode(r io.Reader) (*Scene, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return cfg.Build()
}

// Build validates the description and constructs the scene arenas
func (c Config) Build() (*Scene, error) {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxImageDimension || c.Height > MaxImageDimension {
		return nil, fmt.Errorf("%w: image size %dx%d must be within 1..%d", ErrInvalidScene, c.Width, c.Height, MaxImageDimension)
	}

	s := &Scene{
		Width:  c.Width,
		Height: c.Height,
		Camera: renderer.CameraConfig{
			Center: c.Camera.Center.vec(),
			LookAt: c.Camera.LookAt.vec(),
			Up:     c.Camera.Up.vec(),
			VFov:   c.Camera.VFov,
		},
		Background: c.Background.vec(),
	}

	for i, lc := range c.Lights {
		switch lc.Type {
		case "point":
			s.AddLight(lights.NewPointLight(lc.Position.vec(), lc.Color.vec(), lc.Intensity))
		case "directional":
			light, err := lights.NewDirectionalLight(lc.Direction.vec(), lc.Color.vec(), lc.Intensity)
			if err != nil {
				return nil, fmt.Errorf("%w: light %d: %w", ErrInvalidScene, i, err)
			}
			s.AddLight(light)
		default:
			return nil, fmt.Errorf("%w: light %d: unknown type %q", ErrInvalidScene, i, lc.Type)
		}
	}

	for i, sc := range c.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d: radius %f must be positive", ErrInvalidScene, i, sc.Radius)
		}
		s.AddSphere(geometry.NewSphere(sc.Center.vec(), sc.Radius, sc.Material.build()))
	}

	for i, rc := range c.Rectangles {
		rect, err := geometry.NewRectangle(rc.Corner.vec(), rc.U.vec(), rc.V.vec(), rc.Material.build())
		if err != nil {
			return nil, fmt.Errorf("%w: rectangle %d: %w", ErrInvalidScene, i, err)
		}
		s.AddRectangle(rect)
	}

	return s, nil
}

func (m MaterialCfg) build() core.Material {
	return material.NewPhong(m.Color.vec(), m.Ambient, m.Diffuse, m.Specular, m.Shininess)
}
