package orchestrator

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/starford/dagaz/internal/compiler"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fake is a scriptable platform compiler for orchestration tests.
type fake struct {
	platform models.Platform
	delay    time.Duration
	result   models.CompilationResult
}

func (f *fake) Platform() models.Platform { return f.platform }

func (f *fake) Compile(ctx context.Context, _ *models.AppComposition) models.CompilationResult {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return models.CompilationResult{Platform: f.platform}
		}
	}
	res := f.result
	res.Platform = f.platform
	return res
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func okResult() models.CompilationResult {
	return models.CompilationResult{
		Success: true,
		Files:   []models.GeneratedFile{{Path: "a.txt", Content: "ok"}},
		Stats:   models.Stats{FileCount: 1, TotalSize: 2},
	}
}

func TestCompileAll_KeySetMatchesRequest(t *testing.T) {
	o := New(0, testLogger())
	o.RegisterCompiler(&fake{platform: models.PlatformWeb, result: okResult()})

	platforms := []models.Platform{models.PlatformIOS, models.PlatformWeb}
	results := o.CompileAll(context.Background(), testutil.NewComposition(), platforms)

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	ios, ok := results[models.PlatformIOS]
	if !ok {
		t.Fatal("missing ios entry")
	}
	if ios.Success {
		t.Error("ios should fail without a compiler")
	}
	if len(ios.Files) != 0 {
		t.Errorf("ios files = %d, want 0", len(ios.Files))
	}
	if ios.Stats.FileCount != 0 || ios.Stats.TotalSize != 0 {
		t.Errorf("ios stats = %+v, want zero", ios.Stats)
	}
	if len(ios.Errors) != 1 {
		t.Fatalf("ios errors = %+v, want exactly one", ios.Errors)
	}
	if got := ios.Errors[0].Message; got != "no compiler registered for platform: ios" {
		t.Errorf("message = %q", got)
	}

	web := results[models.PlatformWeb]
	if !web.Success || len(web.Files) != 1 {
		t.Errorf("web result = %+v", web)
	}
}

func TestCompileAll_DefaultsToCompositionTargets(t *testing.T) {
	o := New(0, testLogger())
	o.RegisterCompiler(&fake{platform: models.PlatformWeb, result: okResult()})
	o.RegisterCompiler(&fake{platform: models.PlatformIOS, result: okResult()})
	o.RegisterCompiler(&fake{platform: models.PlatformAndroid, result: okResult()})

	comp := testutil.NewComposition() // targets all three platforms
	results := o.CompileAll(context.Background(), comp, nil)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for p, res := range results {
		if !res.Success {
			t.Errorf("platform %s failed: %+v", p, res.Errors)
		}
	}
}

func TestCompileAll_OneFailureDoesNotAffectOthers(t *testing.T) {
	failing := models.CompilationResult{
		Success: false,
		Errors:  []models.Diagnostic{{Code: "boom", Message: "exploded"}},
	}
	o := New(0, testLogger())
	o.RegisterCompiler(&fake{platform: models.PlatformWeb, result: okResult()})
	o.RegisterCompiler(&fake{platform: models.PlatformIOS, result: failing})

	platforms := []models.Platform{models.PlatformWeb, models.PlatformIOS}
	results := o.CompileAll(context.Background(), testutil.NewComposition(), platforms)

	if !results[models.PlatformWeb].Success {
		t.Error("web should be unaffected by the ios failure")
	}
	if results[models.PlatformIOS].Success {
		t.Error("ios should report its own failure")
	}
}

func TestCompileAll_TimeoutBecomesFailureResult(t *testing.T) {
	o := New(20*time.Millisecond, testLogger())
	o.RegisterCompiler(&fake{platform: models.PlatformWeb, result: okResult()})
	o.RegisterCompiler(&fake{platform: models.PlatformIOS, delay: 5 * time.Second, result: okResult()})

	platforms := []models.Platform{models.PlatformWeb, models.PlatformIOS}
	results := o.CompileAll(context.Background(), testutil.NewComposition(), platforms)

	ios := results[models.PlatformIOS]
	if ios.Success {
		t.Error("slow ios compile should time out")
	}
	if len(ios.Errors) != 1 || ios.Errors[0].Code != "timeout" {
		t.Errorf("ios errors = %+v", ios.Errors)
	}
	if !results[models.PlatformWeb].Success {
		t.Error("web should finish despite the ios timeout")
	}
}

func TestCompileAll_WithRealCompilers(t *testing.T) {
	reg := testutil.NewRegistry()
	o := New(0, testLogger())
	o.RegisterCompiler(compiler.NewWeb(reg))
	o.RegisterCompiler(compiler.NewSwiftUI(reg))
	o.RegisterCompiler(compiler.NewCompose(reg))

	results := o.CompileAll(context.Background(), testutil.NewComposition(), nil)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for p, res := range results {
		if !res.Success {
			t.Errorf("platform %s failed: %+v", p, res.Errors)
		}
		if res.Platform != p {
			t.Errorf("result keyed under %s declares platform %s", p, res.Platform)
		}
		if len(res.Files) == 0 {
			t.Errorf("platform %s produced no files", p)
		}
	}
}

func TestRegisterCompiler_LastWins(t *testing.T) {
	o := New(0, testLogger())
	o.RegisterCompiler(&fake{platform: models.PlatformWeb, result: models.CompilationResult{Success: false}})
	o.RegisterCompiler(&fake{platform: models.PlatformWeb, result: okResult()})

	results := o.CompileAll(context.Background(), testutil.NewComposition(), []models.Platform{models.PlatformWeb})
	if !results[models.PlatformWeb].Success {
		t.Error("replacement compiler should have handled the compile")
	}
}

func TestAvailablePlatforms_Sorted(t *testing.T) {
	o := New(0, testLogger())
	o.RegisterCompiler(&fake{platform: models.PlatformWeb})
	o.RegisterCompiler(&fake{platform: models.PlatformAndroid})
	o.RegisterCompiler(&fake{platform: models.PlatformIOS})

	got := o.AvailablePlatforms()
	want := []models.Platform{models.PlatformAndroid, models.PlatformIOS, models.PlatformWeb}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("platforms[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
