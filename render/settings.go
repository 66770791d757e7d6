package render

import (
	"encoding/json"
	"fmt"
	"runtime"

	"JuliaSet/julia"
	"JuliaSet/misc"
	"JuliaSet/task"

	"github.com/BrugadaSyndrome/bslogger"
)

const DefaultOutputPath = "Julia.bmp"

type Settings struct {
	logger bslogger.Logger

	JuliaSettings  julia.Settings
	OutputPath     string
	TaskGeneration task.Generation
	WorkerCount    int
}

func DefaultSettings() Settings {
	return Settings{
		JuliaSettings:  julia.DefaultSettings(),
		OutputPath:     DefaultOutputPath,
		TaskGeneration: task.Row,
		WorkerCount:    runtime.NumCPU(),
	}
}

// NewSettings loads settingsFile as JSON over the defaults, so any field the file leaves
// out keeps its default. An empty settingsFile yields the defaults.
func NewSettings(settingsFile string) (Settings, error) {
	s := DefaultSettings()

	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return s, err
		}
		err = json.Unmarshal(fileBytes, &s)
		if err != nil {
			return s, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
		}
	}

	err := s.Verify()
	if err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nRender settings\n"
	output += fmt.Sprintf("Output Path: %s\n", s.OutputPath)
	output += fmt.Sprintf("Task Generation: %s\n", s.TaskGeneration)
	output += fmt.Sprintf("Worker Count: %d", s.WorkerCount)
	output += s.JuliaSettings.String()
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RenderSettings", bslogger.Normal, nil)

	err := s.JuliaSettings.Verify()
	if err != nil {
		return err
	}
	if s.OutputPath == "" {
		s.OutputPath = DefaultOutputPath
	}
	if s.TaskGeneration < task.Row || s.TaskGeneration > task.Image {
		s.logger.Warning(fmt.Sprintf("Unknown task generation %d, using %s", int(s.TaskGeneration), task.Row))
		s.TaskGeneration = task.Row
	}
	if s.WorkerCount < 1 {
		s.WorkerCount = 1
	}
	return nil
}
