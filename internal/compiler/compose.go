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

// Compose generates a Jetpack Compose module for the android platform.
type Compose struct {
	base
}

// NewCompose creates the android platform compiler backed by reg.
func NewCompose(reg *registry.Registry) *Compose {
	return &Compose{base{platform: models.PlatformAndroid, reg: reg}}
}

// Platform returns the compiler's declared target.
func (c *Compose) Platform() models.Platform { return c.platform }

// Compile renders the composition as a Compose source tree.
func (c *Compose) Compile(_ context.Context, comp *models.AppComposition) models.CompilationResult {
	start := time.Now()
	diags := &diagnostics{}

	markup := c.renderRoots(comp, renderOptions{indent: "    ", formatProps: kotlinProps}, diags)
	pkg := c.packageName(comp)

	files := []models.GeneratedFile{
		{Path: "app/src/main/kotlin/MainScreen.kt", Content: c.screenSource(comp, pkg, markup)},
		{Path: "app/src/main/kotlin/Theme.kt", Content: fmt.Sprintf("package %s\n\n%s", pkg, theme.ComposeColors(comp.Theme))},
		{Path: "app/build.gradle.kts", Content: c.gradleManifest(comp)},
	}
	return newResult(c.platform, len(diags.errors) == 0, files, diags, time.Since(start))
}

func (c *Compose) packageName(comp *models.AppComposition) string {
	name := naming.ToSnake(comp.Name)
	if name == "" {
		name = "app"
	}
	return "dev.dagaz." + strings.ReplaceAll(name, "_", "")
}

func (c *Compose) screenSource(comp *models.AppComposition, pkg, markup string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import androidx.compose.foundation.layout.Column\n")
	b.WriteString("import androidx.compose.runtime.Composable\n")
	for _, imp := range c.usedImports(comp) {
		b.WriteString(imp + "\n")
	}
	fmt.Fprintf(&b, "\n@Composable\nfun %sScreen() {\n    Column {\n", componentName(comp.Name))
	if markup != "" {
		b.WriteString(indentLines(markup, strings.Repeat("    ", 2)) + "\n")
	}
	b.WriteString("    }\n}\n")
	return b.String()
}

// gradleManifest emits the module build script with only the
// dependencies the composition's used capsules declare, plus the
// Compose baseline.
func (c *Compose) gradleManifest(comp *models.AppComposition) string {
	var b strings.Builder
	b.WriteString("plugins {\n    id(\"com.android.application\")\n    id(\"org.jetbrains.kotlin.android\")\n}\n\n")
	b.WriteString("dependencies {\n")
	b.WriteString("    implementation(\"androidx.compose.ui:ui:1.6.0\")\n")
	b.WriteString("    implementation(\"androidx.compose.material3:material3:1.2.0\")\n")
	for _, d := range c.usedDependencies(comp) {
		fmt.Fprintf(&b, "    implementation(\"%s\")\n", strings.Replace(d, "@", ":", 1))
	}
	b.WriteString("}\n")
	return b.String()
}

// kotlinProps renders instance props as named arguments in sorted order.
func kotlinProps(inst *models.CapsuleInstance) string {
	var parts []string
	for _, name := range sortedKeys(inst.Props) {
		label := naming.ToCamel(name)
		switch t := inst.Props[name].(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s = \"%s\"", label, naming.EscapeString(t)))
		default:
			parts = append(parts, fmt.Sprintf("%s = %s", label, literal(t)))
		}
	}
	return strings.Join(parts, ", ")
}
