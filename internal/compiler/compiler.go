// Package compiler defines the per-platform code generators. Each
// compiler turns one composition plus the shared registry into a set of
// generated source files and diagnostics for its single target platform.
// Target-syntax knowledge lives entirely in the per-platform files; the
// shared helpers here treat templates as opaque text with named
// substitution points.
package compiler

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/registry"
)

// Diagnostic codes.
const (
	CodeUnsupportedCapsule = "unsupported_capsule"
	CodeUnknownProp        = "unknown_prop"
	CodeEmptyComposition   = "empty_composition"
)

// PlatformCompiler generates source artifacts for a single target
// platform. Compile is deterministic given the same (composition,
// registry) pair and keeps every diagnostic buffer scoped to the call,
// so one instance is safe under concurrent and re-entrant use.
type PlatformCompiler interface {
	Platform() models.Platform
	Compile(ctx context.Context, comp *models.AppComposition) models.CompilationResult
}

// diagnostics is the call-scoped accumulator threaded through a single
// Compile run. A fresh value per call is what keeps concurrent compiles
// on the same compiler instance isolated from each other.
type diagnostics struct {
	errors   []models.Diagnostic
	warnings []models.Diagnostic
}

func (d *diagnostics) errorf(code, capsuleID, format string, args ...any) {
	d.errors = append(d.errors, models.Diagnostic{
		Code:      code,
		Message:   fmt.Sprintf(format, args...),
		CapsuleID: capsuleID,
	})
}

func (d *diagnostics) warnf(code, capsuleID, suggestion, format string, args ...any) {
	d.warnings = append(d.warnings, models.Diagnostic{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		CapsuleID:  capsuleID,
		Suggestion: suggestion,
	})
}

// base carries the registry scope shared by every platform
// implementation: capsule queries are answered for one platform only.
type base struct {
	platform models.Platform
	reg      *registry.Registry
}

func (b *base) capsule(id string) (models.CapsuleDefinition, bool) {
	return b.reg.Lookup(id)
}

func (b *base) supportsCapsule(id string) bool {
	return b.reg.Supports(id, b.platform)
}

// template resolves the two-level id → platform → template lookup.
func (b *base) template(id string) (models.CapsuleTemplate, bool) {
	d, ok := b.reg.Lookup(id)
	if !ok {
		return models.CapsuleTemplate{}, false
	}
	return d.Template(b.platform)
}

// usedDependencies returns the sorted union of template dependencies of
// the capsules the composition actually uses on this platform. Capsules
// never referenced contribute nothing, which prunes the generated
// manifests.
func (b *base) usedDependencies(comp *models.AppComposition) []string {
	return b.collectFromUsed(comp, func(t models.CapsuleTemplate) []string { return t.Dependencies })
}

// usedImports returns the sorted union of template import lines of the
// capsules the composition actually uses on this platform.
func (b *base) usedImports(comp *models.AppComposition) []string {
	return b.collectFromUsed(comp, func(t models.CapsuleTemplate) []string { return t.Imports })
}

func (b *base) collectFromUsed(comp *models.AppComposition, pick func(models.CapsuleTemplate) []string) []string {
	seen := make(map[string]struct{})
	for _, id := range comp.UsedCapsules() {
		tpl, ok := b.template(id)
		if !ok {
			continue
		}
		for _, v := range pick(tpl) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// checkProps emits a warning for every instance prop that the capsule's
// prop schema does not declare. Attribution is best-effort.
func (b *base) checkProps(inst *models.CapsuleInstance, diags *diagnostics) {
	def, ok := b.capsule(inst.CapsuleID)
	if !ok || len(inst.Props) == 0 {
		return
	}
	for _, name := range sortedKeys(inst.Props) {
		if _, declared := def.Props[name]; !declared {
			diags.warnf(CodeUnknownProp, inst.ID,
				fmt.Sprintf("remove %q or declare it in the %s prop schema", name, inst.CapsuleID),
				"capsule %s does not declare prop %q", inst.CapsuleID, name)
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var placeholderRe = regexp.MustCompile(`\{\{[a-zA-Z0-9_.-]+\}\}`)

// expandTemplate substitutes the named points of a template source in a
// single pass: bound points take their value, unbound points are
// stripped. Substituted text is never rescanned, so values that happen
// to contain placeholder syntax stay inert.
func expandTemplate(src string, vals map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(src, func(m string) string {
		return vals[m[2:len(m)-2]]
	})
}

// indentLines prefixes every non-empty line of s with indent.
func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// newResult finalizes one compile call into a CompilationResult
// snapshot: empty diagnostic buffers become the absent marker and the
// stats are computed from the file list.
func newResult(p models.Platform, success bool, files []models.GeneratedFile, diags *diagnostics, elapsed time.Duration) models.CompilationResult {
	if files == nil {
		files = []models.GeneratedFile{}
	}
	total := 0
	for _, f := range files {
		total += len(f.Content)
	}
	res := models.CompilationResult{
		Success:  success,
		Platform: p,
		Files:    files,
		Stats: models.Stats{
			FileCount:       len(files),
			TotalSize:       total,
			CompilationTime: elapsed.Milliseconds(),
		},
	}
	if len(diags.errors) > 0 {
		res.Errors = diags.errors
	}
	if len(diags.warnings) > 0 {
		res.Warnings = diags.warnings
	}
	return res
}
