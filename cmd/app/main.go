package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/dagaz/internal"
	"github.com/starford/dagaz/internal/models"
	pkgconfig "github.com/starford/dagaz/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if out := cmd.String("output"); out != "" {
		cfg.Output.Path = out
	}
	if cat := cmd.String("catalog"); cat != "" {
		cfg.Catalog.Path = cat
	}
	return cfg, nil
}

func parsePlatforms(s string) []models.Platform {
	if s == "" {
		return nil
	}
	var out []models.Platform
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, models.Platform(part))
		}
	}
	return out
}

func compileAction(watch bool) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		opts := []internal.Option{
			internal.WithConfig(cfg),
			internal.WithProjectPath(cmd.String("project")),
			internal.WithPlatforms(parsePlatforms(cmd.String("platforms"))),
			internal.WithWatch(watch),
		}

		if err := internal.Run(ctx, opts...); err != nil {
			return fmt.Errorf("app run error: %w", err)
		}
		return nil
	}
}

func mcpAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.RunMCP(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}

func projectFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "project",
			Aliases:  []string{"p"},
			Usage:    "Path to the composition file (JSON)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "platforms",
			Usage: "Comma-separated platforms to compile (web,ios,android); defaults to the composition's targets",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output directory for generated projects",
		},
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "Capsule catalog directory",
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "dagaz",
		Usage: "Compile declarative app compositions into React, SwiftUI and Compose projects",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("DAGAZ_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "compile",
				Usage:  "Compile a composition once and write the generated projects",
				Flags:  projectFlags(),
				Action: compileAction(false),
			},
			{
				Name:   "watch",
				Usage:  "Compile, then recompile whenever the composition or catalog changes",
				Flags:  projectFlags(),
				Action: compileAction(true),
			},
			{
				Name:  "platforms",
				Usage: "List the platforms the engine can compile for",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Capsule catalog directory",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					platforms, err := internal.ListPlatforms(internal.WithConfig(cfg))
					if err != nil {
						return err
					}
					for _, p := range platforms {
						fmt.Println(p)
					}
					return nil
				},
			},
			{
				Name:  "mcp",
				Usage: "Serve the compiler over MCP stdio for LLM integration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "catalog",
						Usage: "Capsule catalog directory",
					},
				},
				Action: mcpAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
