package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/naming"
)

// renderOptions parameterizes the shared tree renderer with the pieces
// that differ per target syntax.
type renderOptions struct {
	// indent is one unit of nesting in the target source.
	indent string
	// formatProps renders the {{props}} substitution point.
	formatProps func(inst *models.CapsuleInstance) string
}

// renderRoots renders the composition's top-level instances, joined by
// blank-line-free newlines, in declaration order.
func (b *base) renderRoots(comp *models.AppComposition, opts renderOptions, diags *diagnostics) string {
	roots := comp.Roots()
	if len(roots) == 0 {
		diags.warnf(CodeEmptyComposition, "",
			"add a root tree or a flat capsule list to the composition",
			"composition %q has no capsule instances", comp.Name)
		return ""
	}
	var parts []string
	for _, root := range roots {
		if s := b.renderInstance(root, opts, diags); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// renderInstance renders one instance and its subtree as target markup.
// An instance whose capsule has no template on this platform produces
// exactly one error diagnostic tagged with the instance id and is
// skipped; siblings and ancestors keep compiling so the rest of the tree
// still produces output.
func (b *base) renderInstance(inst *models.CapsuleInstance, opts renderOptions, diags *diagnostics) string {
	if !b.supportsCapsule(inst.CapsuleID) {
		diags.errorf(CodeUnsupportedCapsule, inst.ID,
			"capsule %q is not supported on platform %q", inst.CapsuleID, b.platform)
		return ""
	}
	tpl, _ := b.template(inst.CapsuleID)
	b.checkProps(inst, diags)

	var kids []string
	for _, child := range inst.Children {
		if s := b.renderInstance(child, opts, diags); s != "" {
			kids = append(kids, s)
		}
	}

	vals := map[string]string{
		"id":    inst.ID,
		"props": opts.formatProps(inst),
	}

	// Slots bind to a {{slot.<name>}} point when the template declares
	// one; otherwise their content flows after the regular children.
	for _, name := range inst.SlotNames() {
		var parts []string
		for _, si := range inst.Slots[name] {
			if s := b.renderInstance(si, opts, diags); s != "" {
				parts = append(parts, s)
			}
		}
		markup := strings.Join(parts, "\n")
		point := "slot." + name
		if strings.Contains(tpl.Source, "{{"+point+"}}") {
			vals[point] = block(markup, opts.indent)
		} else if markup != "" {
			kids = append(kids, markup)
		}
	}

	vals["children"] = block(strings.Join(kids, "\n"), opts.indent)

	for _, name := range sortedKeys(inst.Props) {
		vals["prop."+name] = literal(inst.Props[name])
	}

	return expandTemplate(tpl.Source, vals)
}

// block indents nested markup one unit and surrounds it with newlines so
// it can sit between an opening and closing construct of the template.
func block(markup, indent string) string {
	if markup == "" {
		return ""
	}
	return "\n" + indentLines(markup, indent) + "\n"
}

// literal renders a prop value as a bare source literal: strings are
// escaped for embedding inside a quoted literal, numbers and bools are
// emitted verbatim.
func literal(v any) string {
	switch t := v.(type) {
	case string:
		return naming.EscapeString(t)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
