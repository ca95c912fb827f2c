package domain

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Env is an immutable snapshot of a working directory and a set of environment variables.
// Pipeline stages receive a snapshot and return a new one instead of mutating the process.
type Env struct {
	dir  string
	vars map[string]string
}

// NewEnv creates a snapshot from "KEY=VALUE" entries, as returned by os.Environ.
// Later entries win over earlier ones.
func NewEnv(dir string, environ []string) Env {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k != "" {
			vars[k] = v
		}
	}
	return Env{dir: dir, vars: vars}
}

// Dir returns the snapshot's working directory.
func (e Env) Dir() string {
	return e.dir
}

// Lookup returns the value of key and whether it is present.
func (e Env) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// WithDir returns a copy of the snapshot with a different working directory.
func (e Env) WithDir(dir string) Env {
	return Env{dir: dir, vars: e.vars}
}

// With returns a copy of the snapshot with key set to value.
func (e Env) With(key, value string) Env {
	vars := maps.Clone(e.vars)
	if vars == nil {
		vars = make(map[string]string, 1)
	}
	vars[key] = value
	return Env{dir: e.dir, vars: vars}
}

// Merge returns a copy of the snapshot with the given defaults added.
// Variables already present in the snapshot are kept.
func (e Env) Merge(defaults map[string]string) Env {
	vars := maps.Clone(e.vars)
	if vars == nil {
		vars = make(map[string]string, len(defaults))
	}
	for k, v := range defaults {
		if _, ok := vars[k]; !ok {
			vars[k] = v
		}
	}
	return Env{dir: e.dir, vars: vars}
}

// Environ returns the variables as sorted "KEY=VALUE" strings suitable for process execution.
func (e Env) Environ() []string {
	keys := slices.Sorted(maps.Keys(e.vars))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e.vars[k])
	}
	return out
}

// Resolve returns path joined onto the snapshot's working directory unless it is absolute.
func (e Env) Resolve(path string) string {
	if path == "" {
		return e.dir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(e.dir, path)
}

// PrependPath puts dir in front of the entries of a search-path value.
// The original entries keep their order. An empty value counts as one
// empty entry, so it is kept as a trailing separator.
func PrependPath(current, dir string) string {
	return dir + string(os.PathListSeparator) + current
}
