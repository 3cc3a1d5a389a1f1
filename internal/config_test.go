package internal

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/starford/dagaz/internal/models"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestCompileConfig_UnknownPlatform(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Compile.Platforms = []string{"web", "windows"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown platform should fail validation")
	}
}

func TestCompileConfig_NegativeTimeout(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Compile.Timeout = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative timeout should fail validation")
	}
}

func TestCompileConfig_NegativeDebounce(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Compile.Debounce = -time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative debounce should fail validation")
	}
}

func TestCatalogConfig_PathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Catalog.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty catalog path should fail validation")
	}
}

func TestOutputConfig_PathRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Output.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty output path should fail validation")
	}
}

func TestCompileConfig_YAMLDurationStrings(t *testing.T) {
	cfg := NewDefaultConfig()
	doc := "compile:\n  platforms: [web]\n  timeout: 45s\n  debounce: 250ms\n"
	if err := yaml.Unmarshal([]byte(doc), cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Compile.Timeout != 45*time.Second {
		t.Errorf("timeout = %s, want 45s", cfg.Compile.Timeout)
	}
	if cfg.Compile.Debounce != 250*time.Millisecond {
		t.Errorf("debounce = %s, want 250ms", cfg.Compile.Debounce)
	}
	if len(cfg.Compile.Platforms) != 1 || cfg.Compile.Platforms[0] != "web" {
		t.Errorf("platforms = %v, want [web]", cfg.Compile.Platforms)
	}
}

func TestCompileConfig_YAMLAbsentDurationsKeepDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	doc := "compile:\n  platforms: [ios]\n"
	if err := yaml.Unmarshal([]byte(doc), cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.Compile.Timeout != 30*time.Second {
		t.Errorf("timeout = %s, want default 30s", cfg.Compile.Timeout)
	}
	if cfg.Compile.Debounce != 300*time.Millisecond {
		t.Errorf("debounce = %s, want default 300ms", cfg.Compile.Debounce)
	}
}

func TestCompileConfig_YAMLBadDuration(t *testing.T) {
	cfg := NewDefaultConfig()
	doc := "compile:\n  timeout: fast\n"
	if err := yaml.Unmarshal([]byte(doc), cfg); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}

func TestTargetPlatforms(t *testing.T) {
	cfg := CompileConfig{Platforms: []string{"ios", "web"}}
	got := cfg.TargetPlatforms()
	want := []models.Platform{models.PlatformIOS, models.PlatformWeb}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("platform[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
