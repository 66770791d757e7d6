package task

import (
	"JuliaSet/bitmap"
	"fmt"
)

// Pixel is the evaluated result for one Coordinate.
type Pixel struct {
	Color      bitmap.Color
	Column     uint
	Iterations uint
	Row        uint
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Iterations: %d ", p.Iterations)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}
