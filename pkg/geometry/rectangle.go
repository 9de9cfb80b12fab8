package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// parallelEpsilon is the determinant magnitude below which a ray is treated as parallel
const parallelEpsilon = 1e-10

// Rectangle represents a rectangular surface defined by a corner and two edge vectors.
// Non-orthogonal edges describe a parallelogram, which intersects the same way.
type Rectangle struct {
	Corner   core.Vec3 // One vertex of the rectangle
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal, U × V normalized
	Material core.Material
}

// NewRectangle creates a rectangle from a corner point and two edge vectors.
// Parallel or zero-length edges do not span a surface and are rejected.
func NewRectangle(corner, u, v core.Vec3, material core.Material) (*Rectangle, error) {
	normal, err := u.Cross(v).Normalize()
	if err != nil {
		return nil, fmt.Errorf("degenerate rectangle edges %v and %v: %w", u, v, err)
	}

	return &Rectangle{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
	}, nil
}

// Hit tests if a ray intersects with the rectangle.
// The edge-space coordinates (alpha, beta) and t are each a ratio of triple products.
func (r *Rectangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// det = U · (D × V)
	det := core.ScalarTriple(r.V, r.U, ray.Direction)
	if math.Abs(det) < parallelEpsilon {
		return nil, false
	}
	invDet := 1.0 / det

	s := ray.Origin.Subtract(r.Corner)

	// alpha = s · (D × V) / det
	alpha := core.ScalarTripleProduct(s, ray.Direction, r.V).Sum() * invDet
	if alpha < 0 || alpha > 1 {
		return nil, false
	}

	// beta = D · (s × U) / det
	beta := core.ScalarTriple(r.U, ray.Direction, s) * invDet
	if beta < 0 || beta > 1 {
		return nil, false
	}

	// t = V · (s × U) / det
	t := core.ScalarTripleProduct(r.V, s, r.U).Sum() * invDet
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.Normal)

	return hitRecord, true
}
