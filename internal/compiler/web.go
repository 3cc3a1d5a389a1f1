package compiler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/naming"
	"github.com/starford/dagaz/internal/registry"
	"github.com/starford/dagaz/internal/theme"
)

// Web generates a React project for the web platform.
type Web struct {
	base
}

// NewWeb creates the web platform compiler backed by reg.
func NewWeb(reg *registry.Registry) *Web {
	return &Web{base{platform: models.PlatformWeb, reg: reg}}
}

// Platform returns the compiler's declared target.
func (c *Web) Platform() models.Platform { return c.platform }

// Compile renders the composition as a React source tree. Diagnostics
// live in a fresh accumulator per call: reset, accumulate while walking,
// finalize into a result snapshot.
func (c *Web) Compile(_ context.Context, comp *models.AppComposition) models.CompilationResult {
	start := time.Now()
	diags := &diagnostics{}

	markup := c.renderRoots(comp, renderOptions{indent: "  ", formatProps: webProps}, diags)

	files := []models.GeneratedFile{
		{Path: "src/App.jsx", Content: c.appSource(comp, markup)},
		{Path: "src/theme.css", Content: theme.CSSVariables(comp.Theme)},
		{Path: "package.json", Content: c.packageJSON(comp)},
	}
	return newResult(c.platform, len(diags.errors) == 0, files, diags, time.Since(start))
}

func (c *Web) appSource(comp *models.AppComposition, markup string) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import './theme.css';\n")
	for _, imp := range c.usedImports(comp) {
		b.WriteString(imp + "\n")
	}
	fmt.Fprintf(&b, "\nexport default function %s() {\n", componentName(comp.Name))
	b.WriteString("  return (\n    <div className=\"app\">\n")
	if markup != "" {
		b.WriteString(indentLines(markup, "      ") + "\n")
	}
	b.WriteString("    </div>\n  );\n}\n")
	return b.String()
}

// packageJSON emits the npm manifest with only the dependencies the
// composition's used capsules declare, plus the React baseline.
func (c *Web) packageJSON(comp *models.AppComposition) string {
	deps := map[string]string{
		"react":     "^18.2.0",
		"react-dom": "^18.2.0",
	}
	for _, d := range c.usedDependencies(comp) {
		name, version := splitDependency(d)
		deps[name] = version
	}
	manifest := struct {
		Name         string            `json:"name"`
		Version      string            `json:"version"`
		Private      bool              `json:"private"`
		Dependencies map[string]string `json:"dependencies"`
	}{
		Name:         orDefault(naming.ToKebab(comp.Name), "dagaz-app"),
		Version:      orDefault(comp.Version, "0.1.0"),
		Private:      true,
		Dependencies: deps,
	}
	out, _ := json.MarshalIndent(manifest, "", "  ")
	return string(out) + "\n"
}

// splitDependency parses a "name@version" template dependency. A bare
// name maps to "*".
func splitDependency(d string) (name, version string) {
	if i := strings.LastIndex(d, "@"); i > 0 {
		return d[:i], d[i+1:]
	}
	return d, "*"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// componentName derives the root component identifier from the
// composition name, falling back to App for unusable names.
func componentName(name string) string {
	id := naming.ToIdentifier(naming.ToPascal(name))
	if id == "" {
		return "App"
	}
	return id
}

// webProps renders instance props as JSX attributes in sorted order.
func webProps(inst *models.CapsuleInstance) string {
	var b strings.Builder
	for _, name := range sortedKeys(inst.Props) {
		attr := naming.ToCamel(name)
		switch t := inst.Props[name].(type) {
		case string:
			fmt.Fprintf(&b, " %s=\"%s\"", attr, naming.EscapeString(t))
		case bool:
			if t {
				fmt.Fprintf(&b, " %s", attr)
			} else {
				fmt.Fprintf(&b, " %s={false}", attr)
			}
		default:
			fmt.Fprintf(&b, " %s={%s}", attr, literal(inst.Props[name]))
		}
	}
	return b.String()
}
