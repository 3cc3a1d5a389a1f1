package compiler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/naming"
	"github.com/starford/dagaz/internal/registry"
	"github.com/starford/dagaz/internal/theme"
)

// SwiftUI generates a SwiftUI package for the ios platform.
type SwiftUI struct {
	base
}

// NewSwiftUI creates the ios platform compiler backed by reg.
func NewSwiftUI(reg *registry.Registry) *SwiftUI {
	return &SwiftUI{base{platform: models.PlatformIOS, reg: reg}}
}

// Platform returns the compiler's declared target.
func (c *SwiftUI) Platform() models.Platform { return c.platform }

// Compile renders the composition as a SwiftUI source tree.
func (c *SwiftUI) Compile(_ context.Context, comp *models.AppComposition) models.CompilationResult {
	start := time.Now()
	diags := &diagnostics{}

	markup := c.renderRoots(comp, renderOptions{indent: "    ", formatProps: swiftProps}, diags)

	files := []models.GeneratedFile{
		{Path: "Sources/App.swift", Content: c.appSource(comp, markup)},
		{Path: "Sources/Theme.swift", Content: theme.SwiftUIColors(comp.Theme)},
		{Path: "Package.swift", Content: c.packageManifest(comp)},
	}
	return newResult(c.platform, len(diags.errors) == 0, files, diags, time.Since(start))
}

func (c *SwiftUI) appSource(comp *models.AppComposition, markup string) string {
	name := componentName(comp.Name)
	var b strings.Builder
	b.WriteString("import SwiftUI\n")
	for _, imp := range c.usedImports(comp) {
		b.WriteString(imp + "\n")
	}
	fmt.Fprintf(&b, "\n@main\nstruct %sApp: App {\n", name)
	b.WriteString("    var body: some Scene {\n        WindowGroup {\n            ContentView()\n        }\n    }\n}\n\n")
	b.WriteString("struct ContentView: View {\n    var body: some View {\n        VStack(alignment: .leading) {\n")
	if markup != "" {
		b.WriteString(indentLines(markup, strings.Repeat("    ", 3)) + "\n")
	}
	b.WriteString("        }\n    }\n}\n")
	return b.String()
}

// packageManifest emits Package.swift with only the package dependencies
// the composition's used capsules declare. Dependency entries are raw
// `.package(...)` expressions supplied by the capsule templates.
func (c *SwiftUI) packageManifest(comp *models.AppComposition) string {
	name := componentName(comp.Name)
	var b strings.Builder
	b.WriteString("// swift-tools-version:5.9\nimport PackageDescription\n\n")
	fmt.Fprintf(&b, "let package = Package(\n    name: \"%s\",\n", name)
	deps := c.usedDependencies(comp)
	if len(deps) > 0 {
		b.WriteString("    dependencies: [\n")
		for _, d := range deps {
			fmt.Fprintf(&b, "        %s,\n", d)
		}
		b.WriteString("    ],\n")
	}
	fmt.Fprintf(&b, "    targets: [\n        .executableTarget(name: \"%s\", path: \"Sources\"),\n    ]\n)\n", name)
	return b.String()
}

// swiftProps renders instance props as a labeled argument list in
// sorted order.
func swiftProps(inst *models.CapsuleInstance) string {
	var parts []string
	for _, name := range sortedKeys(inst.Props) {
		label := naming.ToCamel(name)
		switch t := inst.Props[name].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s: \"%s\"", label, naming.EscapeString(t)))
		default:
			parts = append(parts, fmt.Sprintf("%s: %s", label, literal(t)))
		}
	}
	return strings.Join(parts, ", ")
}
