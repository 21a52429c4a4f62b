// Package project persists application state as JSON: saved designs, app
// configuration, the material library, and full-data backups. Everything
// lives under ~/.ribmaker by default.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mariosromano/ribmaker/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.ribmaker/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ribmaker")
}

// SaveProject persists a project to the given path as indented JSON,
// creating any missing parent directories. An existing file is rotated to
// path.bak first.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".bak"); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path. Parameters are normalized
// on load so a hand-edited file cannot smuggle invalid values into the
// generator.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("reading project: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("parsing project %s: %w", path, err)
	}
	p.Params.Normalize()
	if p.Mode == "" {
		p.Mode = model.ModeWall
	}
	return p, nil
}
