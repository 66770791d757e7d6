package render

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"JuliaSet/julia"
	"JuliaSet/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type worker struct {
	julia          julia.Julia
	logger         bslogger.Logger
	tasksCompleted int
}

func newWorker(id int, j julia.Julia) worker {
	return worker{
		julia:  j,
		logger: bslogger.NewLogger(fmt.Sprintf("Worker %d", id), bslogger.Normal, nil),
	}
}

func (w *worker) processTasks(tasksTodo <-chan task.Task, tasksDone chan<- task.Task, wg *sync.WaitGroup) {
	defer wg.Done()
	startTime := time.Now()

	for taskTodo := range tasksTodo {
		for {
			// Process each coordinate given
			coordinate, err := taskTodo.GetNextTask()
			if errors.Is(err, task.ErrNoMoreTasks) {
				break
			}
			taskTodo.AddResult(w.julia.CalcPixel(coordinate))
		}

		tasksDone <- taskTodo
		w.tasksCompleted++
	}

	w.logger.Debug(fmt.Sprintf("Processed %d tasks in %s", w.tasksCompleted, time.Since(startTime)))
}
