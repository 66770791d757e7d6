package task

import (
	"errors"
	"fmt"
)

const (
	Row Generation = iota
	Column
	Image
)

// Generation selects how a raster is split into tasks.
type Generation int

func (g Generation) String() string {
	if g < Row || g > Image {
		return fmt.Sprintf("Generation(%d)", int(g))
	}
	return []string{
		"Row", "Column", "Image",
	}[g]
}

// Count is the number of tasks a width x height raster splits into.
func (g Generation) Count(width uint, height uint) uint {
	switch g {
	case Row:
		return height
	case Column:
		return width
	case Image:
		return 1
	}
	return 0
}

var ErrNoMoreTasks = errors.New("no more tasks")

type Task struct {
	CurrentTask uint
	ID          uint
	Results     []Pixel
	Tasks       []Coordinate
}

func NewTask(id uint) Task {
	return Task{
		ID: id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results))
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

func (t *Task) AddTasksForRow(imageRow uint, imageWidth uint) {
	var c uint
	for c = 0; c < imageWidth; c++ {
		t.AddTaskForPixel(Coordinate{Column: c, Row: imageRow})
	}
}

func (t *Task) AddTasksForColumn(imageHeight uint, imageColumn uint) {
	var r uint
	for r = 0; r < imageHeight; r++ {
		t.AddTaskForPixel(Coordinate{Column: imageColumn, Row: r})
	}
}

func (t *Task) AddTasksForImage(imageHeight uint, imageWidth uint) {
	var r, c uint
	for r = 0; r < imageHeight; r++ {
		for c = 0; c < imageWidth; c++ {
			t.AddTaskForPixel(Coordinate{Column: c, Row: r})
		}
	}
}

// GetNextTask
// Returns the current coordinate to be processed. Hand its result to AddResult before
// calling this method again
func (t *Task) GetNextTask() (Coordinate, error) {
	if t.CurrentTask >= uint(len(t.Tasks)) {
		return Coordinate{}, ErrNoMoreTasks
	}
	return t.Tasks[t.CurrentTask], nil
}

// AddResult
// Records the result for the current coordinate and advances to the next one
func (t *Task) AddResult(pixel Pixel) {
	t.Results = append(t.Results, pixel)
	t.CurrentTask++
}

// Done reports whether every coordinate has a result.
func (t *Task) Done() bool {
	return len(t.Results) == len(t.Tasks)
}
