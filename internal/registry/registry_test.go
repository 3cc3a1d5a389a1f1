package registry

import (
	"reflect"
	"testing"

	"github.com/starford/dagaz/internal/models"
)

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	r.Register(models.CapsuleDefinition{ID: "button", Name: "Button"})

	d, ok := r.Lookup("button")
	if !ok {
		t.Fatal("expected button to be registered")
	}
	if d.Name != "Button" {
		t.Errorf("name = %q, want Button", d.Name)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("expected missing lookup to be absent")
	}
}

func TestRegister_LastWins(t *testing.T) {
	r := New()
	r.Register(models.CapsuleDefinition{ID: "button", Name: "Old"})
	r.Register(models.CapsuleDefinition{ID: "button", Name: "New"})

	d, _ := r.Lookup("button")
	if d.Name != "New" {
		t.Errorf("name = %q, want New (last registration wins)", d.Name)
	}
	if r.Len() != 1 {
		t.Errorf("len = %d, want 1", r.Len())
	}
}

func TestSupports(t *testing.T) {
	r := New()
	r.Register(models.CapsuleDefinition{
		ID: "button",
		Templates: map[models.Platform]models.CapsuleTemplate{
			models.PlatformWeb: {Framework: "react", Source: "<button/>"},
		},
	})

	if !r.Supports("button", models.PlatformWeb) {
		t.Error("button should support web")
	}
	if r.Supports("button", models.PlatformIOS) {
		t.Error("button should not support ios")
	}
	if r.Supports("missing", models.PlatformWeb) {
		t.Error("unregistered id should not be supported")
	}
}

func TestIDs_Sorted(t *testing.T) {
	r := New()
	r.Register(
		models.CapsuleDefinition{ID: "text"},
		models.CapsuleDefinition{ID: "button"},
		models.CapsuleDefinition{ID: "stack"},
	)
	want := []string{"button", "stack", "text"}
	if got := r.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}
