package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
)

const sampleCatalog = `capsules:
  - id: button
    name: Button
    category: input
    props:
      label:
        type: string
        required: true
    templates:
      web:
        framework: react
        dependencies:
          - classnames@^2.3.2
        source: '<button>{{prop.label}}</button>'
      ios:
        framework: swiftui
        source: 'Button("{{prop.label}}") { }'
  - id: text
    name: Text
    templates:
      web:
        framework: react
        source: '<p>{{prop.text}}</p>'
`

func TestParse(t *testing.T) {
	defs, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("len(defs) = %d, want 2", len(defs))
	}
	btn := defs[0]
	if btn.ID != "button" || btn.Name != "Button" {
		t.Errorf("button = %+v", btn)
	}
	tpl, ok := btn.Template(models.PlatformWeb)
	if !ok {
		t.Fatal("button should carry a web template")
	}
	if tpl.Framework != "react" || len(tpl.Dependencies) != 1 {
		t.Errorf("web template = %+v", tpl)
	}
	if _, ok := btn.Template(models.PlatformAndroid); ok {
		t.Error("button should not carry an android template")
	}
	if !btn.Props["label"].Required {
		t.Error("label prop should be required")
	}
}

func TestParse_MissingID(t *testing.T) {
	_, err := Parse([]byte("capsules:\n  - name: Nameless\n"))
	if err == nil {
		t.Fatal("expected error for definition without id")
	}
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("capsules: [}")); err == nil {
		t.Fatal("expected YAML error")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), sampleCatalog)
	writeFile(t, filepath.Join(dir, "extra", "more.yml"), "capsules:\n  - id: badge\n    name: Badge\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	defs, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("len(defs) = %d, want 3", len(defs))
	}
}

func TestLoadDir_Missing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing dir")
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeFile(t, path, "colors:\n  primary: '#123456'\n  text:\n    disabled: '#999999'\nspacing: 4\nshadows: true\n")

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th.Colors.Primary != "#123456" {
		t.Errorf("primary = %q", th.Colors.Primary)
	}
	if th.Colors.Text.Disabled != "#999999" {
		t.Errorf("text.disabled = %q", th.Colors.Text.Disabled)
	}
	if th.Spacing != 4 || !th.Shadows {
		t.Errorf("theme = %+v", th)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
