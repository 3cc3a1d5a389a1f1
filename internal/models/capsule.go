// Package models defines the domain types for Dagaz.
package models

// Platform identifies a compilation target.
type Platform string

// Built-in targets. The registry and orchestrator treat platforms as
// opaque keys, so content packs may declare additional ones.
const (
	PlatformWeb     Platform = "web"
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

// CapsuleTemplate is the code template a capsule definition carries for
// one platform. Source is opaque text with named substitution points
// ({{children}}, {{props}}, {{prop.<name>}}); only the platform compilers
// know what the surrounding syntax means.
type CapsuleTemplate struct {
	Framework    string   `json:"framework" yaml:"framework"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Imports      []string `json:"imports,omitempty" yaml:"imports,omitempty"`
	Source       string   `json:"source" yaml:"source"`
}

// PropSpec describes one property accepted by a capsule.
type PropSpec struct {
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Default  any    `json:"default,omitempty" yaml:"default,omitempty"`
}

// CapsuleDefinition describes a reusable, typed UI component. Presence of
// a platform key in Templates means the capsule supports that platform.
// Definitions are loaded once and read-only for the lifetime of a compile.
type CapsuleDefinition struct {
	ID        string                       `json:"id" yaml:"id"`
	Name      string                       `json:"name" yaml:"name"`
	Category  string                       `json:"category,omitempty" yaml:"category,omitempty"`
	Tags      []string                     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Props     map[string]PropSpec          `json:"props,omitempty" yaml:"props,omitempty"`
	Templates map[Platform]CapsuleTemplate `json:"templates,omitempty" yaml:"templates,omitempty"`
}

// Template returns the capsule's template for p.
func (d *CapsuleDefinition) Template(p Platform) (CapsuleTemplate, bool) {
	t, ok := d.Templates[p]
	return t, ok
}
