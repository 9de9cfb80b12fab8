package renderer

import (
	"context"
	"fmt"
	"time"
)

// Worker renders one strip of the image into its region of the shared buffer
type Worker struct {
	ID        int
	Strip     Strip
	camera    *Camera
	raytracer *Raytracer
}

// NewWorker creates a worker for the given strip
func NewWorker(strip Strip, camera *Camera, raytracer *Raytracer) *Worker {
	return &Worker{
		ID:        strip.Index,
		Strip:     strip,
		camera:    camera,
		raytracer: raytracer,
	}
}

// Render traces one primary ray per pixel of the strip, row-major, and stores the
// quantized colors through view. The context is checked once per scanline.
func (w *Worker) Render(ctx context.Context, view *RegionView) (time.Duration, error) {
	start := time.Now()
	bounds := w.Strip.Bounds

	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		if err := ctx.Err(); err != nil {
			return time.Since(start), err
		}

		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			ray, err := w.camera.GetRay(row, col)
			if err != nil {
				return time.Since(start), fmt.Errorf("worker %d: %w", w.ID, err)
			}

			color, err := w.raytracer.RayColor(ray)
			if err != nil {
				return time.Since(start), fmt.Errorf("worker %d: pixel (%d, %d): %w", w.ID, row, col, err)
			}

			if err := view.Set(row, col, vec3ToRGB(color)); err != nil {
				return time.Since(start), fmt.Errorf("worker %d: %w", w.ID, err)
			}
		}
	}

	return time.Since(start), nil
}
