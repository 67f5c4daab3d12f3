package app

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoFile is returned by Save when the buffer has no file name.
var ErrNoFile = errors.New("no file name")

// Open loads a file into the engine. A missing file starts an empty
// buffer that will be created on save.
func (a *App) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		data = nil
	}
	a.eng.SetText(string(data))
	a.filePath = path
	a.dirty = false
	a.logger.Info("opened %s (%d lines)", path, a.eng.Buffer().LineCount())
	return nil
}

// Save writes the buffer back to its file.
func (a *App) Save() error {
	if a.filePath == "" {
		return ErrNoFile
	}
	if err := os.WriteFile(a.filePath, []byte(a.eng.Buffer().Text()), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", a.filePath, err)
	}
	a.dirty = false
	a.logger.Info("saved %s", a.filePath)
	return nil
}
