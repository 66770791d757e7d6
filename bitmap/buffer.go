package bitmap

import (
	"fmt"
	"math"
)

// Color is one 24-bit pixel. The zero value is black.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("{R: %d G: %d B: %d}", c.R, c.G, c.B)
}

// Buffer is a row-major raster of colors: the pixel at (x, y) is Pix[y*Width+x].
type Buffer struct {
	Width  int
	Height int
	Pix    []Color
}

func NewBuffer(width int, height int) Buffer {
	return Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

func (b *Buffer) String() string {
	return fmt.Sprintf("{Buffer Width: %d Height: %d}", b.Width, b.Height)
}

func (b *Buffer) Index(x int, y int) int {
	return y*b.Width + x
}

func (b *Buffer) Pixel(x int, y int) Color {
	return b.Pix[b.Index(x, y)]
}

func (b *Buffer) SetPixel(x int, y int, c Color) {
	b.Pix[b.Index(x, y)] = c
}

// Valid reports whether the buffer's dimensions are positive, fit the BMP headers and
// agree with its length.
func (b *Buffer) Valid() error {
	if b.Width <= 0 {
		return fmt.Errorf("width must be greater than 0, got %d", b.Width)
	}
	if b.Height <= 0 {
		return fmt.Errorf("height must be greater than 0, got %d", b.Height)
	}
	if int64(b.Width) > math.MaxInt32 || int64(b.Height) > math.MaxInt32 || !pixelDataFits(b.Width, b.Height, MaxFileSize-PixelOffset) {
		return fmt.Errorf("%w: %d x %d does not fit the BMP headers", ErrTooLarge, b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("buffer holds %d pixels, expected %d x %d = %d", len(b.Pix), b.Width, b.Height, b.Width*b.Height)
	}
	return nil
}
