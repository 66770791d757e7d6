// Package julia evaluates the filled Julia set of z -> z^2 + c over a raster.
package julia

import (
	"math/cmplx"

	"JuliaSet/bitmap"
	"JuliaSet/task"

	"github.com/BrugadaSyndrome/bslogger"
)

// Boundary is the escape radius: once |z| exceeds it the orbit diverges.
const Boundary = 2.0

type Julia struct {
	c        complex128
	logger   bslogger.Logger
	settings Settings
}

// NewJulia expects settings that have been through Verify.
func NewJulia(settings Settings) Julia {
	return Julia{
		c:        complex(settings.CReal, settings.CImag),
		logger:   bslogger.NewLogger("Julia", bslogger.Normal, nil),
		settings: settings,
	}
}

// ConvertPixelCoordinateToComplexCoordinate maps (column, row) onto the viewport. Columns
// run from MinRe to MaxRe left to right; rows run from MaxIm at row 0 down to MinIm at the
// last row.
func (j *Julia) ConvertPixelCoordinateToComplexCoordinate(column uint, row uint) complex128 {
	re := j.settings.MinRe + float64(column)*j.settings.ReFactor
	im := j.settings.MaxIm - float64(row)*j.settings.ImFactor
	return complex(re, im)
}

// EscapeTime iterates z = z^2 + c starting from z and returns how many steps were taken
// before |z| left the boundary, capped at MaxIterations.
func (j *Julia) EscapeTime(z complex128) uint {
	var iteration uint
	for cmplx.Abs(z) <= Boundary && iteration < j.settings.MaxIterations {
		z = z*z + j.c
		iteration++
	}
	return iteration
}

func (j *Julia) CalcPixel(coordinate task.Coordinate) task.Pixel {
	z := j.ConvertPixelCoordinateToComplexCoordinate(coordinate.Column, coordinate.Row)
	iterations := j.EscapeTime(z)
	return task.Pixel{
		Color:      j.GetColor(iterations),
		Column:     coordinate.Column,
		Iterations: iterations,
		Row:        coordinate.Row,
	}
}

// Render evaluates every pixel in row-major order on the calling goroutine.
func (j *Julia) Render() bitmap.Buffer {
	width, height := j.settings.Width, j.settings.Height
	buffer := bitmap.NewBuffer(int(width), int(height))

	var row, column uint
	for row = 0; row < height; row++ {
		for column = 0; column < width; column++ {
			pixel := j.CalcPixel(task.Coordinate{Column: column, Row: row})
			buffer.SetPixel(int(column), int(row), pixel.Color)
		}
	}
	return buffer
}
