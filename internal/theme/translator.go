// Package theme translates a composition's semantic design tokens into
// target-specific style source: CSS custom properties for the web target
// and native color constant modules for SwiftUI and Compose.
package theme

import (
	"fmt"
	"strings"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/naming"
)

// Default literals substituted for absent color tokens.
const (
	DefaultPrimary       = "#3B82F6"
	DefaultSecondary     = "#6B7280"
	DefaultAccent        = "#8B5CF6"
	DefaultBackground    = "#FFFFFF"
	DefaultSurface       = "#F9FAFB"
	DefaultError         = "#EF4444"
	DefaultSuccess       = "#10B981"
	DefaultWarning       = "#F59E0B"
	DefaultTextPrimary   = "#111827"
	DefaultTextSecondary = "#6B7280"
	DefaultTextDisabled  = "#9CA3AF"
)

// Defaults for the non-color scales.
const (
	DefaultFontFamily = "system-ui, sans-serif"
	DefaultBaseSize   = 16
	DefaultSpacing    = 8
	DefaultRadius     = 8
)

// Neutral is the fallback triplet for color values that fail to parse.
// A malformed color never raises; it degrades to this constant.
var Neutral = naming.RGB{R: 0, G: 0, B: 0}

// Token is one named color binding. Nested text.* tokens carry flattened
// dotted names ("text.primary").
type Token struct {
	Name  string
	Value string
}

// ColorTokens returns every semantic color token in canonical order,
// substituting the documented default for any absent value. The order is
// fixed so generated style blocks are stable across compiles.
func ColorTokens(t models.ThemeConfig) []Token {
	c := t.Colors
	return []Token{
		{"primary", orDefault(c.Primary, DefaultPrimary)},
		{"secondary", orDefault(c.Secondary, DefaultSecondary)},
		{"accent", orDefault(c.Accent, DefaultAccent)},
		{"background", orDefault(c.Background, DefaultBackground)},
		{"surface", orDefault(c.Surface, DefaultSurface)},
		{"error", orDefault(c.Error, DefaultError)},
		{"success", orDefault(c.Success, DefaultSuccess)},
		{"warning", orDefault(c.Warning, DefaultWarning)},
		{"text.primary", orDefault(c.Text.Primary, DefaultTextPrimary)},
		{"text.secondary", orDefault(c.Text.Secondary, DefaultTextSecondary)},
		{"text.disabled", orDefault(c.Text.Disabled, DefaultTextDisabled)},
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// RGBOf parses a token value, degrading to Neutral on malformed input.
func RGBOf(value string) naming.RGB {
	rgb, ok := naming.HexToRGB(value)
	if !ok {
		return Neutral
	}
	return rgb
}

// CSSVariables renders the theme as a :root block of custom properties
// for the web target.
func CSSVariables(t models.ThemeConfig) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, tok := range ColorTokens(t) {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", naming.ToKebab(tok.Name), tok.Value)
	}
	fmt.Fprintf(&b, "  --font-family: %s;\n", orDefault(t.Typography.FontFamily, DefaultFontFamily))
	fmt.Fprintf(&b, "  --font-size-base: %dpx;\n", orDefaultInt(t.Typography.BaseSize, DefaultBaseSize))
	fmt.Fprintf(&b, "  --spacing-unit: %dpx;\n", orDefaultInt(t.Spacing, DefaultSpacing))
	fmt.Fprintf(&b, "  --radius-unit: %dpx;\n", orDefaultInt(t.Radius, DefaultRadius))
	if t.Shadows {
		b.WriteString("  --shadow-card: 0 1px 3px rgba(0, 0, 0, 0.2);\n")
	} else {
		b.WriteString("  --shadow-card: none;\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func orDefaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// SwiftUIColors renders a Color extension for the ios target. Every
// color token gets a constant, using fractional 0..1 components.
func SwiftUIColors(t models.ThemeConfig) string {
	var b strings.Builder
	b.WriteString("import SwiftUI\n\nextension Color {\n")
	for _, tok := range ColorTokens(t) {
		rgb := RGBOf(tok.Value)
		fmt.Fprintf(&b, "    static let %s = Color(red: %s, green: %s, blue: %s)\n",
			naming.ToCamel(tok.Name), fraction(rgb.R), fraction(rgb.G), fraction(rgb.B))
	}
	b.WriteString("}\n")
	return b.String()
}

func fraction(v int) string {
	return fmt.Sprintf("%.3f", float64(v)/255)
}

// ComposeColors renders Kotlin color constants for the android target.
// Every color token gets a constant, using packed ARGB integers.
func ComposeColors(t models.ThemeConfig) string {
	var b strings.Builder
	b.WriteString("import androidx.compose.ui.graphics.Color\n\n")
	for _, tok := range ColorTokens(t) {
		fmt.Fprintf(&b, "val %s = Color(0x%08X)\n", naming.ToPascal(tok.Name), packARGB(RGBOf(tok.Value)))
	}
	return b.String()
}

func packARGB(c naming.RGB) uint32 {
	return 0xFF000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
