package internal

import "github.com/starford/dagaz/internal/models"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config      *Config
	projectPath string
	platforms   []models.Platform
	watch       bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithProjectPath sets the composition file to compile.
func WithProjectPath(path string) Option {
	return func(a *application) {
		a.projectPath = path
	}
}

// WithPlatforms narrows the compile to the given platforms, overriding
// both the configuration and the composition's own targets.
func WithPlatforms(platforms []models.Platform) Option {
	return func(a *application) {
		a.platforms = platforms
	}
}

// WithWatch keeps the process alive and recompiles on file changes.
func WithWatch(enabled bool) Option {
	return func(a *application) {
		a.watch = enabled
	}
}
