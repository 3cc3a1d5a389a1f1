// Package testutil provides shared fixtures for compiler and
// orchestrator tests: a small capsule catalog and a demo composition.
package testutil

import (
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/registry"
)

// Definitions returns a small capsule catalog covering the common test
// shapes: fully cross-platform capsules, a slotted container, and a
// web-only capsule for unsupported-platform cases.
func Definitions() []models.CapsuleDefinition {
	return []models.CapsuleDefinition{
		{
			ID:       "text",
			Name:     "Text",
			Category: "display",
			Props:    map[string]models.PropSpec{"text": {Type: "string", Required: true}},
			Templates: map[models.Platform]models.CapsuleTemplate{
				models.PlatformWeb:     {Framework: "react", Source: `<p className="cap-text">{{prop.text}}</p>`},
				models.PlatformIOS:     {Framework: "swiftui", Source: `Text("{{prop.text}}")`},
				models.PlatformAndroid: {Framework: "compose", Source: `Text(text = "{{prop.text}}")`},
			},
		},
		{
			ID:       "button",
			Name:     "Button",
			Category: "input",
			Props:    map[string]models.PropSpec{"label": {Type: "string", Required: true}},
			Templates: map[models.Platform]models.CapsuleTemplate{
				models.PlatformWeb: {
					Framework:    "react",
					Dependencies: []string{"classnames@^2.3.2"},
					Imports:      []string{"import classNames from 'classnames';"},
					Source:       `<button className={classNames("cap-button")}>{{prop.label}}</button>`,
				},
				models.PlatformIOS:     {Framework: "swiftui", Source: `Button("{{prop.label}}") { }`},
				models.PlatformAndroid: {Framework: "compose", Source: `Button(onClick = { }) { Text("{{prop.label}}") }`},
			},
		},
		{
			ID:       "stack",
			Name:     "Stack",
			Category: "layout",
			Props:    map[string]models.PropSpec{"gap": {Type: "number"}},
			Templates: map[models.Platform]models.CapsuleTemplate{
				models.PlatformWeb:     {Framework: "react", Source: `<div className="cap-stack"{{props}}>{{children}}</div>`},
				models.PlatformIOS:     {Framework: "swiftui", Source: `VStack {{{children}}}`},
				models.PlatformAndroid: {Framework: "compose", Source: `Column {{{children}}}`},
			},
		},
		{
			ID:       "card",
			Name:     "Card",
			Category: "layout",
			Templates: map[models.Platform]models.CapsuleTemplate{
				models.PlatformWeb:     {Framework: "react", Source: `<section className="cap-card">{{slot.header}}{{children}}</section>`},
				models.PlatformIOS:     {Framework: "swiftui", Source: `GroupBox {{{children}}}`},
				models.PlatformAndroid: {Framework: "compose", Source: `Card {{{children}}}`},
			},
		},
		{
			ID:       "chart",
			Name:     "Chart",
			Category: "display",
			Templates: map[models.Platform]models.CapsuleTemplate{
				models.PlatformWeb: {
					Framework:    "react",
					Dependencies: []string{"recharts@^2.8.0"},
					Source:       `<LineChart{{props}} />`,
				},
			},
		},
	}
}

// NewRegistry returns a registry preloaded with Definitions.
func NewRegistry() *registry.Registry {
	r := registry.New()
	r.Register(Definitions()...)
	return r
}

// NewComposition returns a small three-capsule composition targeting
// every built-in platform.
func NewComposition() *models.AppComposition {
	return &models.AppComposition{
		Name:    "Demo App",
		Version: "1.0.0",
		Targets: []models.Platform{models.PlatformWeb, models.PlatformIOS, models.PlatformAndroid},
		Theme: models.ThemeConfig{
			Colors: models.ThemeColors{Primary: "#FF0000"},
		},
		Root: &models.CapsuleInstance{
			ID:        "root",
			CapsuleID: "stack",
			Props:     map[string]any{"gap": float64(2)},
			Children: []*models.CapsuleInstance{
				{ID: "greeting", CapsuleID: "text", Props: map[string]any{"text": "Hello"}},
				{ID: "go", CapsuleID: "button", Props: map[string]any{"label": "Go"}},
			},
		},
	}
}
