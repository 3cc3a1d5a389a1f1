// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/dagaz/internal/catalog"
	"github.com/starford/dagaz/internal/compiler"
	"github.com/starford/dagaz/internal/export"
	"github.com/starford/dagaz/internal/mcpserver"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/orchestrator"
	"github.com/starford/dagaz/internal/project"
	"github.com/starford/dagaz/internal/registry"
	"github.com/starford/dagaz/internal/watch"
)

// Run compiles the project once, or keeps recompiling on changes when
// watch mode is enabled.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.projectPath == "" {
		return fmt.Errorf("project path is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("catalog_path", cfg.Catalog.Path),
		slog.String("output_path", cfg.Output.Path),
		slog.String("project", app.projectPath),
		slog.String("log_level", cfg.App.LogLevel.String()))

	_, orch, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	writer, err := export.NewWriter(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("init output: %w", err)
	}

	platforms := app.platforms
	if len(platforms) == 0 {
		platforms = cfg.Compile.TargetPlatforms()
	}

	compileOnce := func(ctx context.Context) error {
		comp, err := project.Load(app.projectPath)
		if err != nil {
			return fmt.Errorf("load project: %w", err)
		}

		results := orch.CompileAll(ctx, comp, platforms)
		written, err := writer.WriteAll(results)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		failed := 0
		for _, res := range results {
			for _, d := range res.Errors {
				logger.Error("compile error",
					slog.String("platform", string(res.Platform)),
					slog.String("code", d.Code),
					slog.String("capsule", d.CapsuleID),
					slog.String("message", d.Message))
			}
			for _, d := range res.Warnings {
				logger.Warn("compile warning",
					slog.String("platform", string(res.Platform)),
					slog.String("code", d.Code),
					slog.String("message", d.Message))
			}
			if !res.Success {
				failed++
			}
		}

		logger.Info("Compile finished",
			slog.String("composition", comp.Name),
			slog.Int("platforms", len(results)),
			slog.Int("failed", failed),
			slog.Int("files_written", written),
			slog.String("output", writer.Root()))

		if failed > 0 {
			return fmt.Errorf("compile failed for %d of %d platforms", failed, len(results))
		}
		return nil
	}

	if !app.watch {
		return compileOnce(ctx)
	}

	// Watch mode: compile immediately, then recompile when the project
	// or the catalog changes. The first compile is allowed to fail; the
	// user will fix the file and the watcher picks it up.
	if err := compileOnce(ctx); err != nil {
		logger.Error("initial compile failed", slog.String("error", err.Error()))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Run(gCtx, []string{app.projectPath, cfg.Catalog.Path}, cfg.Compile.Debounce, logger, func() {
			if err := compileOnce(gCtx); err != nil {
				logger.Error("recompile failed", slog.String("error", err.Error()))
			}
		})
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Watcher stopped successfully")
	return nil
}

// RunMCP serves the compiler over MCP stdio. Logs go to stderr since
// stdout carries the protocol stream.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	reg, orch, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("MCP server starting on stdio")
	return mcpserver.New(reg, orch).ServeStdio()
}

// ListPlatforms loads the catalog and reports the platforms the engine
// can compile for.
func ListPlatforms(opts ...Option) ([]models.Platform, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	_, orch, err := buildEngine(app.config, logger)
	if err != nil {
		return nil, err
	}
	return orch.AvailablePlatforms(), nil
}

// buildEngine loads the catalog and wires the registry, the platform
// compilers and the orchestrator.
func buildEngine(cfg *Config, logger *slog.Logger) (*registry.Registry, *orchestrator.Orchestrator, error) {
	defs, err := catalog.LoadDir(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	reg := registry.New()
	for _, d := range defs {
		reg.Register(d)
	}
	logger.Info("Catalog loaded",
		slog.String("path", cfg.Catalog.Path),
		slog.Int("capsules", reg.Len()))

	orch := orchestrator.New(cfg.Compile.Timeout, logger)
	orch.RegisterCompiler(compiler.NewWeb(reg))
	orch.RegisterCompiler(compiler.NewSwiftUI(reg))
	orch.RegisterCompiler(compiler.NewCompose(reg))

	return reg, orch, nil
}
