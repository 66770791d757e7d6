package julia

import (
	"math/cmplx"
	"testing"

	"JuliaSet/bitmap"
	"JuliaSet/task"
)

func newTestJulia(t *testing.T, settings Settings) Julia {
	t.Helper()
	if err := settings.Verify(); err != nil {
		t.Fatalf("Verify: %s", err)
	}
	return NewJulia(settings)
}

// 4x2 raster with c = 0, so z -> z^2 and only |z| > 1 escapes
func smallSettings() Settings {
	settings := DefaultSettings()
	settings.Width = 4
	settings.Height = 2
	settings.MaxIterations = 10
	settings.CReal = 0
	settings.CImag = 0
	return settings
}

func TestVerifyDefaults(t *testing.T) {
	var settings Settings
	settings.MinRe, settings.MaxRe = 1, 1
	if err := settings.Verify(); err != nil {
		t.Fatal(err)
	}
	if settings.Width != 1024 || settings.Height != 1024 || settings.MaxIterations != 1000 {
		t.Errorf("raster defaults not applied: %s", settings.String())
	}
	if settings.MinRe != -1.5 || settings.MaxRe != 1.5 || settings.MinIm != -1.5 {
		t.Errorf("viewport defaults not applied: %s", settings.String())
	}
	if settings.CReal != 0 || settings.CImag != 0 {
		t.Errorf("Verify changed c to %g + %gi", settings.CReal, settings.CImag)
	}
}

func TestVerifyDerivesViewport(t *testing.T) {
	settings := smallSettings()
	if err := settings.Verify(); err != nil {
		t.Fatal(err)
	}
	if settings.MaxIm != 0 {
		t.Errorf("MaxIm = %g, expected 0", settings.MaxIm)
	}
	if settings.ReFactor != 1 {
		t.Errorf("ReFactor = %g, expected 1", settings.ReFactor)
	}
	if settings.ImFactor != 1.5 {
		t.Errorf("ImFactor = %g, expected 1.5", settings.ImFactor)
	}
}

func TestConvertPixelCoordinate(t *testing.T) {
	j := newTestJulia(t, smallSettings())
	tests := []struct {
		column, row uint
		expected    complex128
	}{
		{0, 0, complex(-1.5, 0)},
		{3, 0, complex(1.5, 0)},
		{1, 1, complex(-0.5, -1.5)},
		{2, 1, complex(0.5, -1.5)},
	}
	for _, test := range tests {
		got := j.ConvertPixelCoordinateToComplexCoordinate(test.column, test.row)
		if got != test.expected {
			t.Errorf("(%d, %d) mapped to %v, expected %v", test.column, test.row, got, test.expected)
		}
	}

	defaults := newTestJulia(t, DefaultSettings())
	if top := defaults.ConvertPixelCoordinateToComplexCoordinate(0, 0); top != complex(-1.5, 1.5) {
		t.Errorf("top left of the default viewport = %v, expected (-1.5+1.5i)", top)
	}
	if bottom := defaults.ConvertPixelCoordinateToComplexCoordinate(1023, 1023); cmplx.Abs(bottom-complex(1.5, -1.5)) > 1e-12 {
		t.Errorf("bottom right of the default viewport = %v, expected (1.5-1.5i)", bottom)
	}
}

func TestSmallScenario(t *testing.T) {
	j := newTestJulia(t, smallSettings())

	// counted by hand: -1.5 squares to 2.25 in one step, +-0.5 shrink forever,
	// the corners already sit outside |z| = 2 and +-0.5-1.5i square to -2+-1.5i
	expected := [][]uint{
		{1, 10, 10, 1},
		{0, 1, 1, 0},
	}
	for row, counts := range expected {
		for column, count := range counts {
			pixel := j.CalcPixel(task.Coordinate{Column: uint(column), Row: uint(row)})
			if pixel.Iterations != count {
				t.Errorf("(%d, %d) escaped after %d iterations, expected %d", column, row, pixel.Iterations, count)
			}
		}
	}

	buffer := j.Render()
	colors := map[[2]int]bitmap.Color{
		{0, 0}: {R: 2, G: 30, B: 158},
		{1, 0}: {},
		{2, 0}: {},
		{3, 0}: {R: 2, G: 30, B: 158},
		{0, 1}: {},
		{1, 1}: {R: 2, G: 30, B: 158},
	}
	for xy, color := range colors {
		if got := buffer.Pixel(xy[0], xy[1]); got != color {
			t.Errorf("pixel %v = %s, expected %s", xy, got, color)
		}
	}
}

func TestIterationsBounded(t *testing.T) {
	settings := DefaultSettings()
	settings.Width = 64
	settings.Height = 48
	settings.MaxIterations = 50
	j := newTestJulia(t, settings)

	var row, column uint
	for row = 0; row < settings.Height; row++ {
		for column = 0; column < settings.Width; column++ {
			pixel := j.CalcPixel(task.Coordinate{Column: column, Row: row})
			if pixel.Iterations > settings.MaxIterations {
				t.Fatalf("(%d, %d) took %d iterations, cap is %d", column, row, pixel.Iterations, settings.MaxIterations)
			}
			if pixel.Iterations == settings.MaxIterations && pixel.Color != (bitmap.Color{}) {
				t.Fatalf("(%d, %d) never escaped but is colored %s", column, row, pixel.Color)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	settings := DefaultSettings()
	settings.Width = 40
	settings.Height = 30
	settings.MaxIterations = 200
	j := newTestJulia(t, settings)

	first := j.Render()
	second := j.Render()
	if len(first.Pix) != 40*30 {
		t.Fatalf("buffer holds %d pixels, expected %d", len(first.Pix), 40*30)
	}
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatalf("pixel %d differs between renders: %s vs %s", i, first.Pix[i], second.Pix[i])
		}
	}
}

func TestSinglePixelRaster(t *testing.T) {
	settings := smallSettings()
	settings.Width = 1
	settings.Height = 1
	j := newTestJulia(t, settings)

	// the step sizes divide by zero, the sample is NaN and escapes at once
	buffer := j.Render()
	if len(buffer.Pix) != 1 || buffer.Pix[0] != (bitmap.Color{}) {
		t.Errorf("single pixel render = %v, expected one black pixel", buffer.Pix)
	}
}
