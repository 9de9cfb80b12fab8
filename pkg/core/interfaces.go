package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Material holds the Phong shading parameters of a surface
type Material struct {
	Color     Vec3    // Base color, each channel in [0,1]
	Ambient   float64 // Fraction of the base color always visible
	Diffuse   float64 // Lambertian weight
	Specular  float64 // Highlight weight
	Shininess float64 // Phong exponent
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, facing against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines if we hit the front face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Illumination describes the light arriving at a surface point
type Illumination struct {
	Direction Vec3    // Unit vector from the point toward the light
	Distance  float64 // Distance to the light, +Inf for lights at infinity
	Radiance  Vec3    // Light color scaled by intensity
}

// Light interface for light sources
type Light interface {
	Illuminate(point Vec3) (Illumination, error)
}
