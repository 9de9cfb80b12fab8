package material

import (
	"math"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// NewPhong creates a Phong material. Weights are clamped to [0,1] and shininess to >= 1.
func NewPhong(color core.Vec3, ambient, diffuse, specular, shininess float64) core.Material {
	return core.Material{
		Color:     color.Clamp(0, 1),
		Ambient:   clamp01(ambient),
		Diffuse:   clamp01(diffuse),
		Specular:  clamp01(specular),
		Shininess: math.Max(1, shininess),
	}
}

// NewMatte creates a diffuse material without highlights
func NewMatte(color core.Vec3) core.Material {
	return NewPhong(color, 0.1, 0.9, 0, 1)
}

// NewGlossy creates a diffuse material with a sharp white highlight
func NewGlossy(color core.Vec3) core.Material {
	return NewPhong(color, 0.1, 0.7, 0.4, 64)
}

// Ambient returns the color a surface shows regardless of lighting
func Ambient(m core.Material) core.Vec3 {
	return m.Color.Multiply(m.Ambient)
}

// Direct evaluates the diffuse and specular response to one unshadowed light.
// normal, toViewer and ill.Direction must be unit vectors.
func Direct(m core.Material, normal, toViewer core.Vec3, ill core.Illumination) core.Vec3 {
	cosTheta := normal.Dot(ill.Direction)
	if cosTheta <= 0 {
		return core.Vec3{}
	}

	color := m.Color.MultiplyVec(ill.Radiance).Multiply(m.Diffuse * cosTheta)

	if m.Specular > 0 {
		// Mirror the light direction about the normal
		reflected := normal.Multiply(2 * cosTheta).Subtract(ill.Direction)
		if cosAlpha := reflected.Dot(toViewer); cosAlpha > 0 {
			color = color.Add(ill.Radiance.Multiply(m.Specular * math.Pow(cosAlpha, m.Shininess)))
		}
	}

	return color
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}
