package main

import (
	"flag"
	"fmt"

	"JuliaSet/bitmap"
	"JuliaSet/misc"
	"JuliaSet/render"

	"github.com/BrugadaSyndrome/bslogger"
)

func main() {
	var outputPath, settingsFile string
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file with render settings, defaults are used when empty")
	flag.StringVar(&outputPath, "outputPath", "", "Where to write the bitmap, overrides the settings file")
	flag.Parse()

	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	status, err := run(settingsFile, outputPath)
	misc.CheckError(err, logger, misc.Fatal)
	logger.Info(status)
}

// run renders the configured Julia set to disk and returns the status line to report.
func run(settingsFile string, outputPath string) (string, error) {
	settings, err := render.NewSettings(settingsFile)
	if err != nil {
		return "", fmt.Errorf("loading settings: %w", err)
	}
	if outputPath != "" {
		settings.OutputPath = outputPath
	}

	coordinator := render.NewCoordinator(settings)
	buffer, err := coordinator.Render()
	if err != nil {
		return "", fmt.Errorf("rendering: %w", err)
	}

	err = bitmap.Save(settings.OutputPath, buffer)
	if err != nil {
		return "", fmt.Errorf("saving bitmap: %w", err)
	}

	julia := settings.JuliaSettings
	return fmt.Sprintf("julia set with c = %g + %gi generated and saved to %s", julia.CReal, julia.CImag, settings.OutputPath), nil
}
