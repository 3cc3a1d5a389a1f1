package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/models"
)

const sampleProject = `{
  "name": "Checkout",
  "version": "2.0.0",
  "targets": ["web", "ios"],
  "theme": {"colors": {"primary": "#FF0000"}},
  "root": {
    "id": "root",
    "capsuleId": "stack",
    "children": [
      {"id": "title", "capsuleId": "text", "props": {"text": "Pay now"}}
    ],
    "slots": {
      "footer": [{"id": "cta", "capsuleId": "button", "props": {"label": "Pay"}}]
    }
  }
}`

func TestParse(t *testing.T) {
	comp, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if comp.Name != "Checkout" || comp.Version != "2.0.0" {
		t.Errorf("comp = %+v", comp)
	}
	if len(comp.Targets) != 2 || comp.Targets[0] != models.PlatformWeb {
		t.Errorf("targets = %v", comp.Targets)
	}
	if comp.Theme.Colors.Primary != "#FF0000" {
		t.Errorf("primary = %q", comp.Theme.Colors.Primary)
	}
	if comp.Root == nil || len(comp.Root.Children) != 1 {
		t.Fatalf("root = %+v", comp.Root)
	}
	footer := comp.Root.Slots["footer"]
	if len(footer) != 1 || footer[0].CapsuleID != "button" {
		t.Errorf("footer slot = %+v", footer)
	}
}

func TestParse_NoName(t *testing.T) {
	_, err := Parse([]byte(`{"targets": ["web"]}`))
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	if err := os.WriteFile(path, []byte(sampleProject), 0o644); err != nil {
		t.Fatal(err)
	}
	comp, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Name != "Checkout" {
		t.Errorf("name = %q", comp.Name)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
