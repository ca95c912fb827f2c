// Package app implements the application layer for rtcbuild.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/rtcbuild/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/rtcbuild/internal/core/domain"
	"go.trai.ch/rtcbuild/internal/core/ports"
	"go.trai.ch/rtcbuild/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	resolver     ports.PathResolver
	inspector    ports.SubmoduleInspector
	telemetry    ports.Telemetry
	logger       ports.Logger

	stdout  io.Writer
	environ func() []string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	p *pipeline.Pipeline,
	resolver ports.PathResolver,
	inspector ports.SubmoduleInspector,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipeline:     p,
		resolver:     resolver,
		inspector:    inspector,
		telemetry:    telemetry,
		logger:       logger,
		stdout:       os.Stdout,
		environ:      os.Environ,
	}
}

// WithStdout sets the writer that receives the link directives.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithEnviron sets the source of the initial environment snapshot.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// RunOptions configures a pipeline run.
type RunOptions struct {
	// Dir is the package directory the build is invoked from.
	Dir string
	// ConfigPath is the configuration file, relative to Dir unless absolute.
	// Empty means rtcbuild.yaml.
	ConfigPath string
	// EnvFile is an optional dotenv file merged into the initial environment.
	EnvFile string
}

// Run builds the native library and writes the link directives to stdout.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	cfg, env, err := a.prepare(opts)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := a.telemetry.Close(); cerr != nil {
			a.logger.Warn("failed to close telemetry: " + cerr.Error())
		}
	}()

	res, err := a.pipeline.Run(ctx, cfg, env, a.stdout)
	if err != nil {
		return err
	}

	a.logger.Info("built " + cfg.Native.Library + " for profile " + res.Profile)
	return nil
}

// Paths returns the directories derived from profile under the configured layout.
func (a *App) Paths(opts RunOptions, profile string) (domain.Paths, error) {
	if profile == "" {
		return domain.Paths{}, zerr.Wrap(domain.ErrMissingEnv, "profile must not be empty")
	}

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return domain.Paths{}, err
	}
	return domain.ProfilePaths(cfg.Native.Layout, profile), nil
}

// Status reports the checkout state of the submodules registered at the repository root.
func (a *App) Status(opts RunOptions) ([]domain.SubmoduleStatus, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	pkgDir, err := a.resolver.Canonicalize(dirOrDefault(opts.Dir))
	if err != nil {
		return nil, err
	}

	root, err := a.resolver.Canonicalize(filepath.Join(pkgDir, cfg.Root))
	if err != nil {
		return nil, err
	}

	statuses, err := a.inspector.Status(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to inspect submodules")
	}
	return statuses, nil
}

func (a *App) prepare(opts RunOptions) (domain.Config, domain.Env, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return domain.Config{}, domain.Env{}, err
	}

	pkgDir, err := a.resolver.Canonicalize(dirOrDefault(opts.Dir))
	if err != nil {
		return domain.Config{}, domain.Env{}, err
	}

	env := domain.NewEnv(pkgDir, a.environ())
	if opts.EnvFile != "" {
		vars, err := a.configLoader.LoadEnvFile(resolveIn(opts.Dir, opts.EnvFile))
		if err != nil {
			return domain.Config{}, domain.Env{}, err
		}
		env = env.Merge(vars)
	}

	return cfg, env, nil
}

func (a *App) loadConfig(opts RunOptions) (domain.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFilename
	}

	cfg, err := a.configLoader.Load(resolveIn(opts.Dir, path))
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func dirOrDefault(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

func resolveIn(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dirOrDefault(dir), path)
}
