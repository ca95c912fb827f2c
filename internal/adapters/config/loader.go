// Package config provides the configuration loader for rtcbuild.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/rtcbuild/internal/core/domain"
	"go.trai.ch/rtcbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the package directory.
const DefaultFilename = "rtcbuild.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path and applies it over domain.DefaultConfig.
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("no " + filepath.Base(path) + " found, using built-in defaults")
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		parseErr := zerr.Wrap(domain.ErrInvalidConfig, err.Error())
		return domain.Config{}, zerr.With(parseErr, "path", path)
	}

	cfg := apply(domain.DefaultConfig(), file)
	if err := validate(cfg); err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// LoadEnvFile reads the variables of a dotenv file.
func (l *Loader) LoadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read env file"), "path", path)
	}
	return vars, nil
}

func apply(cfg domain.Config, file File) domain.Config {
	setString(&cfg.Root, file.Root)

	setString(&cfg.Bridge.Program, file.Bridge.Program)
	setString(&cfg.Bridge.Entry, file.Bridge.Entry)
	setString(&cfg.Bridge.Output, file.Bridge.Output)

	if file.Submodule.Recursive != nil {
		cfg.Submodule.Recursive = *file.Submodule.Recursive
	}

	setString(&cfg.Toolchain.Dir, file.Toolchain.Dir)
	setString(&cfg.Toolchain.SyncProgram, file.Toolchain.SyncProgram)
	if file.Toolchain.SyncArgs != nil {
		cfg.Toolchain.SyncArgs = file.Toolchain.SyncArgs
	}

	setString(&cfg.Native.Layout.SourceDir, file.Native.SourceDir)
	setString(&cfg.Native.Layout.OutputRoot, file.Native.OutputRoot)
	setString(&cfg.Native.Layout.ObjectDir, file.Native.ObjectDir)
	setString(&cfg.Native.Generator, file.Native.Generator)
	setString(&cfg.Native.Executor, file.Native.Executor)
	setString(&cfg.Native.Target, file.Native.Target)
	setString(&cfg.Native.Library, file.Native.Library)

	setString(&cfg.Vars.Profile, file.Env.Profile)
	setString(&cfg.Vars.Path, file.Env.Path)
	setString(&cfg.Vars.OutDir, file.Env.OutDir)

	return cfg
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// validate rejects layouts that would break the profile path derivation.
func validate(cfg domain.Config) error {
	// Checked in file order so the first offending field is reported.
	layout := []struct {
		field string
		value string
	}{
		{"toolchain.dir", cfg.Toolchain.Dir},
		{"native.source_dir", cfg.Native.Layout.SourceDir},
		{"native.output_root", cfg.Native.Layout.OutputRoot},
		{"native.object_dir", cfg.Native.Layout.ObjectDir},
	}
	for _, dir := range layout {
		if filepath.IsAbs(dir.value) {
			err := zerr.Wrap(domain.ErrInvalidConfig, "directory must be relative")
			err = zerr.With(err, "field", dir.field)
			return zerr.With(err, "value", dir.value)
		}
	}
	return nil
}
