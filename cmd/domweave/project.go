package main

import (
	"path/filepath"

	"github.com/domweave/domweave/internal/config"
	"github.com/domweave/domweave/internal/errors"
	"github.com/domweave/domweave/pkg/schema"
)

// loadProject loads domweave.json from the working directory upward,
// falling back to defaults when the project has none.
func loadProject() (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if errors.IsCode(err, "E001") {
		return config.New(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// projectRoot returns the directory output paths are resolved against.
func projectRoot(cfg *config.Config) string {
	if dir := cfg.Dir(); dir != "" {
		return dir
	}
	return "."
}

// loadSchema loads the project schema, or the embedded default table
// when no schema path is configured. The returned name is the source
// file name recorded in generated headers.
func loadSchema(cfg *config.Config) (*schema.Schema, string, error) {
	if cfg.Schema == "" {
		s, err := schema.Default()
		return s, "html.yaml", err
	}
	path := filepath.Join(projectRoot(cfg), cfg.Schema)
	s, err := schema.LoadFile(path)
	return s, filepath.Base(cfg.Schema), err
}
