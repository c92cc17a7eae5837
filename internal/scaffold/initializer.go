package scaffold

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dyluth/tock/internal/config"
	"github.com/dyluth/tock/pkg/timesheet"
)

//go:embed templates/*
var templatesFS embed.FS

// SampleLogName is the example work log written next to tock.yml
const SampleLogName = "worklog.json"

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize writes tock.yml and a sample work log into dir.
// If force is true, existing files are replaced.
func Initialize(dir string, force bool) ([]string, error) {
	if force {
		if err := handleForce(dir); err != nil {
			return nil, err
		}
	}

	files, err := getTemplateFiles(dir)
	if err != nil {
		return nil, err
	}

	if err := writeFiles(files); err != nil {
		return nil, err
	}

	if err := validateCreatedFiles(dir); err != nil {
		return nil, err
	}

	created := make([]string, 0, len(files))
	for _, f := range files {
		created = append(created, filepath.Base(f.Path))
	}
	return created, nil
}

// handleForce removes existing files if --force was specified
func handleForce(dir string) error {
	for _, name := range managedFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

// getTemplateFiles reads the embedded templates
func getTemplateFiles(dir string) ([]FileInfo, error) {
	files := []FileInfo{}

	for _, name := range managedFiles {
		content, err := templatesFS.ReadFile("templates/" + name + ".tmpl")
		if err != nil {
			return nil, fmt.Errorf("failed to read %s template: %w", name, err)
		}
		files = append(files, FileInfo{
			Path:        filepath.Join(dir, name),
			Content:     content,
			Permissions: 0644,
		})
	}

	return files, nil
}

// writeFiles writes all template files to disk
func writeFiles(files []FileInfo) error {
	for _, file := range files {
		if err := os.WriteFile(file.Path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return nil
}

// validateCreatedFiles checks that tock.yml loads and that the sample log
// ingests under that configuration
func validateCreatedFiles(dir string) error {
	cfg, err := config.Load(filepath.Join(dir, config.DefaultFileName))
	if err != nil {
		return fmt.Errorf("created %s is invalid: %w", config.DefaultFileName, err)
	}

	doc, err := os.ReadFile(filepath.Join(dir, SampleLogName))
	if err != nil {
		return fmt.Errorf("failed to read created %s: %w", SampleLogName, err)
	}

	if _, err := timesheet.NewBuilder(cfg.BuilderOptions(nil)...).Build(doc); err != nil {
		return fmt.Errorf("created %s does not ingest: %w", SampleLogName, err)
	}

	return nil
}

// PrintSuccess prints the success message with created files
func PrintSuccess(w io.Writer, created []string) {
	fmt.Fprintln(w, "\n✅ Successfully initialized tock!")
	fmt.Fprintln(w, "\nCreated:")
	for _, name := range created {
		fmt.Fprintf(w, "  ✓ %s\n", name)
	}
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Inspect the sample log: tock show %s\n", SampleLogName)
	fmt.Fprintf(w, "  2. Adjust %s to match your logs\n", config.DefaultFileName)
	fmt.Fprintln(w, "  3. Push a catalog to Redis: tock push <file>")
}
