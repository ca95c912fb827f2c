// Package fs provides filesystem adapters.
package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/rtcbuild/internal/core/domain"
	"go.trai.ch/rtcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver on the local filesystem.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Canonicalize returns the absolute, symlink-resolved form of the directory at path.
func (r *Resolver) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", resolutionError(err, path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", resolutionError(err, path)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", resolutionError(err, path)
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrPathResolution, "not a directory"), "path", path)
	}

	return resolved, nil
}

func resolutionError(cause error, path string) error {
	err := zerr.Wrap(domain.ErrPathResolution, cause.Error())
	return zerr.With(err, "path", path)
}
