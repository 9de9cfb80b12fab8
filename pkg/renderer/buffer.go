package renderer

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
)

var (
	// ErrInvalidSize is returned for non-positive or unaddressable image dimensions
	ErrInvalidSize = errors.New("invalid image dimensions")
	// ErrOutOfRegion is returned when a worker writes outside its strip
	ErrOutOfRegion = errors.New("pixel outside assigned region")
)

// ImageBuffer is a row-major array of packed RGB triples.
// During a render each worker writes only through its own RegionView.
type ImageBuffer struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*3
}

// NewImageBuffer allocates a zeroed buffer of width × height pixels
func NewImageBuffer(width, height int) (*ImageBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	// width*height*3 must fit in an int
	if width > math.MaxInt/3/height {
		return nil, fmt.Errorf("%w: %dx%d overflows the pixel buffer", ErrInvalidSize, width, height)
	}
	return &ImageBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}, nil
}

// offset returns the index of the red byte of pixel (row, col)
func (b *ImageBuffer) offset(row, col int) int {
	return (row*b.Width + col) * 3
}

// At returns the RGB triple of pixel (row, col)
func (b *ImageBuffer) At(row, col int) [3]byte {
	i := b.offset(row, col)
	return [3]byte{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// Region returns a write view restricted to the strip's bounds
func (b *ImageBuffer) Region(strip Strip) (*RegionView, error) {
	imageBounds := image.Rect(0, 0, b.Width, b.Height)
	if strip.Bounds.Empty() || !strip.Bounds.In(imageBounds) {
		return nil, fmt.Errorf("strip %d bounds %v not within image %v", strip.Index, strip.Bounds, imageBounds)
	}

	// Slice covering only the strip's rows, capped so appends cannot spill over
	start := b.offset(strip.Bounds.Min.Y, 0)
	end := b.offset(strip.Bounds.Max.Y, 0)

	return &RegionView{
		bounds: strip.Bounds,
		width:  b.Width,
		pix:    b.Pix[start:end:end],
	}, nil
}

// ToRGBA converts the buffer to an opaque RGBA image for encoding
func (b *ImageBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			rgb := b.At(row, col)
			img.SetRGBA(col, row, color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return img
}

// WritePPM writes the buffer as a binary (P6) PPM image
func (b *ImageBuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n%d\n", b.Width, b.Height, 255); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	if _, err := bw.Write(b.Pix); err != nil {
		return fmt.Errorf("write ppm pixels: %w", err)
	}
	return bw.Flush()
}

// RegionView grants write access to the pixels of one strip
type RegionView struct {
	bounds image.Rectangle
	width  int    // full image width
	pix    []byte // rows [bounds.Min.Y, bounds.Max.Y) of the image
}

// Bounds returns the pixel bounds this view may write
func (r *RegionView) Bounds() image.Rectangle {
	return r.bounds
}

// Set stores an RGB triple at pixel (row, col) in image coordinates
func (r *RegionView) Set(row, col int, rgb [3]byte) error {
	if !image.Pt(col, row).In(r.bounds) {
		return fmt.Errorf("%w: (%d, %d) not in %v", ErrOutOfRegion, row, col, r.bounds)
	}
	i := ((row-r.bounds.Min.Y)*r.width + col) * 3
	r.pix[i] = rgb[0]
	r.pix[i+1] = rgb[1]
	r.pix[i+2] = rgb[2]
	return nil
}
