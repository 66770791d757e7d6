package julia

import (
	"testing"

	"JuliaSet/bitmap"
)

func TestPaletteColor(t *testing.T) {
	tests := []struct {
		iterations    uint
		maxIterations uint
		expected      bitmap.Color
	}{
		{0, 10, bitmap.Color{}},
		{1, 10, bitmap.Color{R: 2, G: 30, B: 158}},
		{10, 10, bitmap.Color{}},
		{1, 1000, bitmap.Color{R: 0, G: 0, B: 2}},
		{500, 1000, bitmap.Color{R: 143, G: 239, B: 135}},
		{999, 1000, bitmap.Color{R: 2, G: 0, B: 0}},
		{1000, 1000, bitmap.Color{}},
	}
	for _, test := range tests {
		got, err := PaletteColor(test.iterations, test.maxIterations)
		if err != nil {
			t.Errorf("PaletteColor(%d, %d): %s", test.iterations, test.maxIterations, err)
		}
		if got != test.expected {
			t.Errorf("PaletteColor(%d, %d) = %s, expected %s", test.iterations, test.maxIterations, got, test.expected)
		}
	}
}

func TestPaletteNeverClamps(t *testing.T) {
	for _, maxIterations := range []uint{1, 2, 10, 255, 1000, 4096} {
		var i uint
		for i = 0; i <= maxIterations; i++ {
			if _, err := PaletteColor(i, maxIterations); err != nil {
				t.Fatalf("PaletteColor(%d, %d): %s", i, maxIterations, err)
			}
		}
	}
}
