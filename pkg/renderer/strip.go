package renderer

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidWorkers is returned when the worker count cannot partition the image
var ErrInvalidWorkers = errors.New("worker count must be positive and divide the image height")

// Strip is a horizontal band of scanlines rendered by one worker
type Strip struct {
	Index  int             // Worker index that owns this strip
	Bounds image.Rectangle // Rows [Min.Y, Max.Y), columns [Min.X, Max.X)
}

// Partition splits a width × height image into equal full-width strips, one per worker.
// Strip i owns rows [i·H/T, (i+1)·H/T). The strips are pairwise disjoint and cover
// every pixel exactly once, which is what lets workers share the buffer without locks.
func Partition(width, height, workers int) ([]Strip, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if workers <= 0 || height%workers != 0 {
		return nil, fmt.Errorf("%w: %d workers for height %d", ErrInvalidWorkers, workers, height)
	}

	rows := height / workers
	strips := make([]Strip, workers)
	for i := range strips {
		strips[i] = Strip{
			Index:  i,
			Bounds: image.Rect(0, i*rows, width, (i+1)*rows),
		}
	}

	return strips, nil
}

// ValidWorkerCounts lists every worker count that evenly divides height, ascending
func ValidWorkerCounts(height int) []int {
	var counts []int
	for n := 1; n <= height; n++ {
		if height%n == 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

// largestWorkerCount returns the largest valid worker count not exceeding limit
func largestWorkerCount(height, limit int) int {
	best := 1
	for _, n := range ValidWorkerCounts(height) {
		if n > limit {
			break
		}
		best = n
	}
	return best
}
