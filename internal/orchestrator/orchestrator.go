// Package orchestrator fans one compile request out across every
// registered platform compiler and joins the per-platform results.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/starford/dagaz/internal/compiler"
	"github.com/starford/dagaz/internal/models"
)

// DefaultTimeout bounds a single platform's compile inside CompileAll.
const DefaultTimeout = 30 * time.Second

// Orchestrator holds one compiler per platform and runs the independent
// per-platform compiles concurrently. Compiler registration is
// last-write-wins and must finish before the first CompileAll call;
// the compiler map is read-only afterwards.
type Orchestrator struct {
	compilers map[models.Platform]compiler.PlatformCompiler
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates an orchestrator. A non-positive timeout falls back to
// DefaultTimeout; a nil logger falls back to slog.Default.
func New(timeout time.Duration, logger *slog.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		compilers: make(map[models.Platform]compiler.PlatformCompiler),
		timeout:   timeout,
		logger:    logger,
	}
}

// RegisterCompiler indexes c by its declared platform, replacing any
// prior compiler for the same platform.
func (o *Orchestrator) RegisterCompiler(c compiler.PlatformCompiler) {
	o.compilers[c.Platform()] = c
}

// AvailablePlatforms returns the sorted set of registered platform keys.
func (o *Orchestrator) AvailablePlatforms() []models.Platform {
	out := make([]models.Platform, 0, len(o.compilers))
	for p := range o.compilers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CompileAll compiles comp for every requested platform concurrently and
// returns a map whose key set is exactly the requested list (defaulting
// to comp.Targets). A platform with no registered compiler gets a
// synthesized failure result; a platform that exceeds the per-call
// timeout gets a timeout failure result. Either way the other platforms
// are unaffected: one platform's failure never blocks or cancels
// another's compile.
func (o *Orchestrator) CompileAll(ctx context.Context, comp *models.AppComposition, platforms []models.Platform) map[models.Platform]models.CompilationResult {
	if len(platforms) == 0 {
		platforms = comp.Targets
	}

	runID := uuid.NewString()
	o.logger.Info("compile: fan-out",
		slog.String("run_id", runID),
		slog.String("composition", comp.Name),
		slog.Int("platforms", len(platforms)))

	results := make([]models.CompilationResult, len(platforms))
	var g errgroup.Group
	for i, p := range platforms {
		c, ok := o.compilers[p]
		if !ok {
			results[i] = failure(p, "no_compiler", fmt.Sprintf("no compiler registered for platform: %s", p))
			o.logger.Warn("compile: unknown platform",
				slog.String("run_id", runID),
				slog.String("platform", string(p)))
			continue
		}
		g.Go(func() error {
			results[i] = o.compileOne(ctx, c, comp)
			o.logger.Info("compile: platform done",
				slog.String("run_id", runID),
				slog.String("platform", string(p)),
				slog.Bool("success", results[i].Success),
				slog.Int("files", results[i].Stats.FileCount),
				slog.Int64("elapsed_ms", results[i].Stats.CompilationTime))
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[models.Platform]models.CompilationResult, len(platforms))
	for i, p := range platforms {
		out[p] = results[i]
	}
	return out
}

// compileOne wraps a single platform's compile in an independent
// timeout, converting a timeout into a normal failure result for that
// platform only.
func (o *Orchestrator) compileOne(ctx context.Context, c compiler.PlatformCompiler, comp *models.AppComposition) models.CompilationResult {
	cctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	done := make(chan models.CompilationResult, 1)
	go func() {
		done <- c.Compile(cctx, comp)
	}()

	select {
	case res := <-done:
		return res
	case <-cctx.Done():
		return failure(c.Platform(), "timeout",
			fmt.Sprintf("compile for platform %s aborted: %v", c.Platform(), cctx.Err()))
	}
}

// failure synthesizes a failed result with zero files, zero stats, and
// exactly one error diagnostic.
func failure(p models.Platform, code, msg string) models.CompilationResult {
	return models.CompilationResult{
		Success:  false,
		Platform: p,
		Files:    []models.GeneratedFile{},
		Errors:   []models.Diagnostic{{Code: code, Message: msg}},
	}
}
