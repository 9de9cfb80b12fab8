package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-strip-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for a strip render
type Config struct {
	Workers int // Number of parallel workers; must divide the image height (0 = auto)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers: 0, // Auto-detect from CPU count
	}
}

// Coordinator partitions the image into strips, renders them concurrently and
// joins the workers before handing out the finished buffer.
type Coordinator struct {
	width, height int
	strips        []Strip
	camera        *Camera
	raytracer     *Raytracer
	logger        core.Logger
}

// NewCoordinator validates the configuration against the scene and prepares the strips.
// No buffer is allocated until Render is called.
func NewCoordinator(scene Scene, config Config, logger core.Logger) (*Coordinator, error) {
	width, height := scene.GetWidth(), scene.GetHeight()

	workers := config.Workers
	if workers == 0 {
		workers = largestWorkerCount(height, runtime.NumCPU())
	}

	strips, err := Partition(width, height, workers)
	if err != nil {
		return nil, err
	}

	camera, err := NewCamera(scene.GetCameraConfig(), width, height)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Coordinator{
		width:     width,
		height:    height,
		strips:    strips,
		camera:    camera,
		raytracer: NewRaytracer(scene),
		logger:    logger,
	}, nil
}

// Workers returns the number of workers a render will launch
func (c *Coordinator) Workers() int {
	return len(c.strips)
}

// Strips returns the strip assignment, one per worker
func (c *Coordinator) Strips() []Strip {
	return append([]Strip(nil), c.strips...)
}

// Render launches one worker per strip and waits for all of them.
// If any worker fails the others are cancelled and no image is returned.
func (c *Coordinator) Render(ctx context.Context) (*ImageBuffer, RenderStats, error) {
	buffer, err := NewImageBuffer(c.width, c.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	views := make([]*RegionView, len(c.strips))
	for i, strip := range c.strips {
		if views[i], err = buffer.Region(strip); err != nil {
			return nil, RenderStats{}, err
		}
	}

	c.logger.Printf("Rendering %dx%d image with %d workers (%d rows each)...\n",
		c.width, c.height, len(c.strips), c.height/len(c.strips))

	// Each worker writes only its own slot, same as the pixel regions
	workerTimes := make([]time.Duration, len(c.strips))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i, strip := range c.strips {
		worker := NewWorker(strip, c.camera, c.raytracer)
		view := views[i]
		g.Go(func() error {
			elapsed, err := worker.Render(gctx, view)
			workerTimes[worker.ID] = elapsed
			return err
		})
	}

	// Barrier: the buffer is only readable once every worker has returned
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render aborted: %w", err)
	}
	elapsed := time.Since(start)

	stats := RenderStats{
		Width:        c.width,
		Height:       c.height,
		TotalPixels:  c.width * c.height,
		Workers:      len(c.strips),
		RowsPerStrip: c.height / len(c.strips),
		WorkerTimes:  workerTimes,
		Duration:     elapsed,
	}

	slowest, longest := stats.SlowestWorker()
	c.logger.Printf("Render completed in %v (slowest worker %d: %v)\n", elapsed, slowest, longest)

	return buffer, stats, nil
}
