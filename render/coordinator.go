// Package render spreads the evaluation of a Julia set raster over a pool of workers and
// collects the results into a pixel buffer.
package render

import (
	"fmt"
	"sync"
	"time"

	"JuliaSet/bitmap"
	"JuliaSet/julia"
	"JuliaSet/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Coordinator struct {
	julia              julia.Julia
	logger             bslogger.Logger
	settings           Settings
	taskCount          uint
	taskGeneratedCount uint
	taskIngestedCount  uint
}

// NewCoordinator expects settings that have been through Verify.
func NewCoordinator(settings Settings) Coordinator {
	width, height := settings.JuliaSettings.Width, settings.JuliaSettings.Height
	// generateTasks blocks forever without at least one worker draining tasksTodo
	if settings.WorkerCount < 1 {
		settings.WorkerCount = 1
	}
	return Coordinator{
		julia:     julia.NewJulia(settings.JuliaSettings),
		logger:    bslogger.NewLogger("Coordinator", bslogger.Normal, nil),
		settings:  settings,
		taskCount: settings.TaskGeneration.Count(width, height),
	}
}

// Render evaluates the whole raster and returns the populated buffer. It returns only
// after every worker has exited and every task has been written into the buffer, so the
// caller is the sole owner of the result.
func (c *Coordinator) Render() (bitmap.Buffer, error) {
	width, height := c.settings.JuliaSettings.Width, c.settings.JuliaSettings.Height
	buffer := bitmap.NewBuffer(int(width), int(height))
	c.taskGeneratedCount = 0
	c.taskIngestedCount = 0

	tasksTodo := make(chan task.Task, c.settings.WorkerCount)
	tasksDone := make(chan task.Task, c.settings.WorkerCount)
	workerWait := &sync.WaitGroup{}

	c.logger.Debug(fmt.Sprintf("Rendering %dx%d in %d %s tasks with %d workers", width, height, c.taskCount, c.settings.TaskGeneration, c.settings.WorkerCount))
	startTime := time.Now()

	go c.generateTasks(tasksTodo)

	for i := 1; i <= c.settings.WorkerCount; i++ {
		w := newWorker(i, c.julia)
		workerWait.Add(1)
		go w.processTasks(tasksTodo, tasksDone, workerWait)
	}

	// tasksDone closes once the last worker has handed back its last task
	go func() {
		workerWait.Wait()
		close(tasksDone)
	}()

	incomplete := c.ingestTasks(tasksDone, &buffer)

	c.logger.Debug(fmt.Sprintf("Tasks [Generated: %d] [Ingested: %d] in %s", c.taskGeneratedCount, c.taskIngestedCount, time.Since(startTime)))
	if c.taskIngestedCount != c.taskCount {
		return buffer, fmt.Errorf("ingested %d of %d tasks", c.taskIngestedCount, c.taskCount)
	}
	if incomplete > 0 {
		return buffer, fmt.Errorf("%d tasks came back with missing pixels", incomplete)
	}
	return buffer, nil
}

func (c *Coordinator) generateTasks(tasksTodo chan<- task.Task) {
	c.logger.Debug("Generating tasks")
	width, height := c.settings.JuliaSettings.Width, c.settings.JuliaSettings.Height

	var id uint
	switch c.settings.TaskGeneration {
	case task.Row:
		var row uint
		for row = 0; row < height; row++ {
			taskTodo := task.NewTask(id)
			taskTodo.AddTasksForRow(row, width)
			tasksTodo <- taskTodo
			id++
		}
	case task.Column:
		var column uint
		for column = 0; column < width; column++ {
			taskTodo := task.NewTask(id)
			taskTodo.AddTasksForColumn(height, column)
			tasksTodo <- taskTodo
			id++
		}
	case task.Image:
		taskTodo := task.NewTask(id)
		taskTodo.AddTasksForImage(height, width)
		tasksTodo <- taskTodo
		id++
	default:
		c.logger.Error(fmt.Sprintf("Unknown generation type: %s", c.settings.TaskGeneration))
	}

	c.taskGeneratedCount = id
	close(tasksTodo)
}

// ingestTasks writes every result into buffer and returns how many tasks were handed
// back without a result for each of their coordinates.
func (c *Coordinator) ingestTasks(tasksDone <-chan task.Task, buffer *bitmap.Buffer) uint {
	var incomplete uint
	for taskDone := range tasksDone {
		if !taskDone.Done() {
			c.logger.Error(fmt.Sprintf("Task %d returned %d of %d pixels", taskDone.ID, len(taskDone.Results), len(taskDone.Tasks)))
			incomplete++
		}
		for _, result := range taskDone.Results {
			buffer.SetPixel(int(result.Column), int(result.Row), result.Color)
		}
		c.taskIngestedCount++
	}
	return incomplete
}
