package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/tock/internal/config"
)

var managedFiles = []string{config.DefaultFileName, SampleLogName}

// CheckExisting checks if tock.yml or the sample log already exist in dir.
// Returns an error if they do, nil otherwise
func CheckExisting(dir string) error {
	var existingFiles []string

	for _, name := range managedFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			existingFiles = append(existingFiles, name)
		}
	}

	if len(existingFiles) > 0 {
		errMsg := "tock already initialized\n\nFound existing"
		if len(existingFiles) == 1 {
			errMsg += fmt.Sprintf(": %s", existingFiles[0])
		} else {
			errMsg += " files:\n"
			for _, file := range existingFiles {
				errMsg += fmt.Sprintf("  - %s\n", file)
			}
		}
		errMsg += "\nUse 'tock init --force' to reinitialize (this will overwrite existing files)"

		return fmt.Errorf("%s", errMsg)
	}

	return nil
}
