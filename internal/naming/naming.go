// Package naming provides the pure string transforms shared by the code
// generators: identifier sanitization, case conversions, literal escaping,
// and color parsing.
package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToIdentifier turns free-form text into a valid source identifier:
// non-alphanumeric characters are stripped, whitespace is collapsed, and
// a leading digit is prefixed with an underscore ("2Fast" → "_2Fast").
func ToIdentifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return out
	}
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		out = "_" + out
	}
	return out
}

// words splits s into word fragments on non-alphanumeric separators and
// lower-to-upper case transitions ("myButton" → ["my", "Button"]).
func words(s string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()
	return out
}

// ToPascal converts s to PascalCase. The first rune of each word is
// upper-cased, so words starting with a multibyte letter stay intact.
func ToPascal(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(w[size:]))
	}
	return b.String()
}

// ToCamel converts s to camelCase.
func ToCamel(s string) string {
	p := ToPascal(s)
	if p == "" {
		return p
	}
	r, size := utf8.DecodeRuneInString(p)
	return string(unicode.ToLower(r)) + p[size:]
}

// ToSnake converts s to snake_case.
func ToSnake(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}

// ToKebab converts s to kebab-case.
func ToKebab(s string) string {
	return strings.ReplaceAll(ToSnake(s), "_", "-")
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeString escapes backslash, double quote, newline, carriage return,
// and tab so s can be embedded inside a quoted source literal. No other
// characters are altered.
func EscapeString(s string) string {
	return escaper.Replace(s)
}

// RGB is a parsed 8-bit color triplet.
type RGB struct {
	R int
	G int
	B int
}

// HexToRGB parses #RRGGBB or RRGGBB (case-insensitive, exactly six hex
// digits). Anything else — shorthand, alpha channel, malformed input —
// returns ok=false.
func HexToRGB(hex string) (RGB, bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	var rgb RGB
	for i, dst := range []*int{&rgb.R, &rgb.G, &rgb.B} {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return RGB{}, false
		}
		*dst = hi<<4 | lo
	}
	return rgb, true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// String renders the triplet as rgb(r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
