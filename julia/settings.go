package julia

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	CImag         float64
	CReal         float64
	Height        uint
	ImFactor      float64 `json:"-"`
	MaxIm         float64 `json:"-"`
	MaxIterations uint
	MaxRe         float64
	MinIm         float64
	MinRe         float64
	ReFactor      float64 `json:"-"`
	Width         uint
}

// DefaultSettings renders c = 0.355 + 0.355i over [-1.5, 1.5] on a 1024 x 1024 raster.
func DefaultSettings() Settings {
	return Settings{
		CImag:         0.355,
		CReal:         0.355,
		Height:        1024,
		MaxIterations: 1000,
		MaxRe:         1.5,
		MinIm:         -1.5,
		MinRe:         -1.5,
		Width:         1024,
	}
}

func (s *Settings) String() string {
	output := "\nJulia settings\n"
	output += fmt.Sprintf("C: %g + %gi\n", s.CReal, s.CImag)
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Real: [%g, %g]\n", s.MinRe, s.MaxRe)
	output += fmt.Sprintf("Imaginary: [%g, %g]\n", s.MinIm, s.MaxIm)
	output += fmt.Sprintf("Width: %d\n", s.Width)
	return output
}

// Verify replaces unusable values with their defaults and derives the imaginary extent
// and the per-pixel step sizes. c is never touched so any parameter, including 0, can
// be rendered.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("JuliaSettings", bslogger.Normal, nil)
	defaults := DefaultSettings()

	if s.Height == 0 {
		s.Height = defaults.Height
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = defaults.MaxIterations
	}
	if s.Width == 0 {
		s.Width = defaults.Width
	}
	if s.MinRe >= s.MaxRe {
		s.logger.Warning(fmt.Sprintf("Real range [%g, %g] is empty, using [%g, %g]", s.MinRe, s.MaxRe, defaults.MinRe, defaults.MaxRe))
		s.MinRe = defaults.MinRe
		s.MaxRe = defaults.MaxRe
		s.MinIm = defaults.MinIm
	}
	if s.Width == 1 || s.Height == 1 {
		s.logger.Warning("A single pixel wide or tall raster has no step size, every pixel on that axis becomes NaN")
	}

	// Keep the aspect ratio of the raster on the complex plane
	s.MaxIm = s.MinIm + (s.MaxRe-s.MinRe)*float64(s.Height)/float64(s.Width)
	s.ReFactor = (s.MaxRe - s.MinRe) / float64(s.Width-1)
	s.ImFactor = (s.MaxIm - s.MinIm) / float64(s.Height-1)

	return nil
}
