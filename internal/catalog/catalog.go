// Package catalog loads capsule definitions and theme presets from YAML
// content files. The catalog is content, not logic: the registry and the
// compilers never know where definitions came from.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
)

type file struct {
	Capsules []models.CapsuleDefinition `yaml:"capsules"`
}

// Parse decodes capsule definitions from one YAML document.
func Parse(data []byte) ([]models.CapsuleDefinition, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	for i, d := range f.Capsules {
		if d.ID == "" {
			return nil, fmt.Errorf("catalog: definition %d: %w: missing id", i, apperr.ErrInvalid)
		}
	}
	return f.Capsules, nil
}

// LoadFile reads and parses one catalog file.
func LoadFile(path string) ([]models.CapsuleDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return defs, nil
}

// LoadDir walks dir and returns the union of every .yaml/.yml catalog
// file, in path order. Later files win on duplicate ids once registered.
func LoadDir(dir string) ([]models.CapsuleDefinition, error) {
	var out []models.CapsuleDefinition
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !isYAML(d.Name()) {
			return nil
		}
		defs, err := LoadFile(p)
		if err != nil {
			return err
		}
		out = append(out, defs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: load dir %s: %w", dir, err)
	}
	return out, nil
}

// LoadTheme reads one theme preset file.
func LoadTheme(path string) (models.ThemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ThemeConfig{}, fmt.Errorf("catalog: read theme %s: %w", path, err)
	}
	var t models.ThemeConfig
	if err := yaml.Unmarshal(data, &t); err != nil {
		return models.ThemeConfig{}, fmt.Errorf("catalog: parse theme %s: %w", path, err)
	}
	return t, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
