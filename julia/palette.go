package julia

import (
	"fmt"

	"JuliaSet/bitmap"
	"JuliaSet/misc"
)

// Polynomial palette coefficients. With t in [0, 1) each polynomial peaks below 1, so
// every channel stays under 255.
const (
	redScale   = 9.0
	greenScale = 15.0
	blueScale  = 8.5
)

// GetColor maps an escape count to a color. Points that never escaped are black; the
// rest follow a smooth polynomial ramp of t = iterations / MaxIterations.
func (j *Julia) GetColor(iterations uint) bitmap.Color {
	color, err := PaletteColor(iterations, j.settings.MaxIterations)
	if err != nil {
		j.logger.Warning(err.Error())
	}
	return color
}

// PaletteColor is the palette for a given iteration cap. Each channel is truncated toward
// zero and clamped to [0, 255]; an error is returned alongside the clamped color when any
// channel fell outside that range.
func PaletteColor(iterations uint, maxIterations uint) (bitmap.Color, error) {
	if iterations >= maxIterations {
		return bitmap.Color{}, nil
	}

	t := float64(iterations) / float64(maxIterations)
	r := redScale * (1 - t) * t * t * t * 255
	g := greenScale * (1 - t) * (1 - t) * t * t * 255
	b := blueScale * (1 - t) * (1 - t) * (1 - t) * t * 255

	var color bitmap.Color
	var rOk, gOk, bOk bool
	color.R, rOk = misc.ClampUint8(r)
	color.G, gOk = misc.ClampUint8(g)
	color.B, bOk = misc.ClampUint8(b)
	if !rOk || !gOk || !bOk {
		return color, fmt.Errorf("palette out of range for %d/%d iterations: (%g, %g, %g) clamped to %s", iterations, maxIterations, r, g, b, color)
	}
	return color, nil
}
