package misc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return nil, errors.New("no filename supplied")
	}
	// open file for reading
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s - %w", fileName, err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s - %w", fileName, err)
	}

	return fileBytes, nil
}

// WriteFile writes contents to a temporary file next to fileName and renames it into
// place once every byte is on disk. On failure the temporary file is removed, so
// fileName is either left untouched or fully written.
func WriteFile(fileName string, contents []byte) (int, error) {
	if fileName == "" {
		return 0, errors.New("no filename supplied")
	}
	// create a scratch file in the destination directory so the rename stays on one filesystem
	file, err := os.CreateTemp(filepath.Dir(fileName), "."+filepath.Base(fileName)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("unable to create file %s - %w", fileName, err)
	}
	tempName := file.Name()

	bytesWritten, err := file.Write(contents)
	if err != nil {
		file.Close()
		os.Remove(tempName)
		return bytesWritten, fmt.Errorf("unable to write file %s - %w", fileName, err)
	}
	err = file.Sync()
	if err != nil {
		file.Close()
		os.Remove(tempName)
		return bytesWritten, fmt.Errorf("unable to sync file %s - %w", fileName, err)
	}
	err = file.Close()
	if err != nil {
		os.Remove(tempName)
		return bytesWritten, fmt.Errorf("unable to close file %s - %w", fileName, err)
	}
	// CreateTemp uses 0600
	err = os.Chmod(tempName, 0644)
	if err != nil {
		os.Remove(tempName)
		return bytesWritten, fmt.Errorf("unable to set permissions on %s - %w", fileName, err)
	}
	err = os.Rename(tempName, fileName)
	if err != nil {
		os.Remove(tempName)
		return bytesWritten, fmt.Errorf("unable to move file into place %s - %w", fileName, err)
	}

	return bytesWritten, nil
}
