// Package project loads app compositions from JSON project files, the
// interchange format of the authoring surfaces (editor, AI panel,
// persisted projects).
package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
)

// Parse decodes an AppComposition from JSON. Compositions are assumed
// schema-valid upstream; only structural decode failures and a missing
// name are rejected here.
func Parse(data []byte) (*models.AppComposition, error) {
	var comp models.AppComposition
	if err := json.Unmarshal(data, &comp); err != nil {
		return nil, fmt.Errorf("project: parse: %w", err)
	}
	if comp.Name == "" {
		return nil, fmt.Errorf("project: %w: composition has no name", apperr.ErrInvalid)
	}
	return &comp, nil
}

// Load reads and parses a project file.
func Load(path string) (*models.AppComposition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project: read %s: %w", path, err)
	}
	return Parse(data)
}
