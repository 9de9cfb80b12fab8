package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width        int             // Image width in pixels
	Height       int             // Image height in pixels
	TotalPixels  int             // Total number of pixels rendered
	Workers      int             // Number of workers used
	RowsPerStrip int             // Scanlines assigned to each worker
	WorkerTimes  []time.Duration // Wall time per worker, indexed by worker ID
	Duration     time.Duration   // Wall time from dispatch to join
}

// SlowestWorker returns the index and duration of the worker that took longest
func (s RenderStats) SlowestWorker() (int, time.Duration) {
	slowest, longest := -1, time.Duration(0)
	for i, d := range s.WorkerTimes {
		if slowest < 0 || d > longest {
			slowest, longest = i, d
		}
	}
	return slowest, longest
}
