package main

import (
	"errors"
	"fmt"
	"os"

	"gladegen/pkg/lib"

	"github.com/charmbracelet/huh"
)

// writeOutput delivers the rendered source. An empty path or "-" prints to
// stdout. An existing file asks for confirmation unless --force is set.
// Script output is additionally marked executable; failing to set the mode
// is only a warning.
func writeOutput(path, content string, executable bool) error {
	if path == "" || path == "-" {
		fmt.Print(content)
		return nil
	}

	if !flagForce {
		if _, err := os.Stat(path); err == nil {
			ok, err := confirmOverwrite(path)
			if err != nil {
				return err
			}
			if !ok {
				lib.Statusf("User cancelled.")
				return nil
			}
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	lib.Statusf("File was generated: %s", path)

	if executable {
		if err := os.Chmod(path, 0o774); err != nil {
			lib.Warnf("unable to make it executable: %v", err)
		} else {
			lib.Statusf("Mode 774 was set to make it executable.")
		}
	}
	return nil
}

// confirmOverwrite asks before clobbering an existing file. Aborting the
// prompt (ctrl-c) counts as declining, not as an error.
func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("File exists: %s", path)).
		Description("Overwrite it?").
		Affirmative("Overwrite").
		Negative("Cancel").
		Value(&overwrite).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return overwrite, nil
}
