// Package shell provides the external command runner adapter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/rtcbuild/internal/core/domain"
	"go.trai.ch/rtcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes cmd with the snapshot's variables as its complete environment.
// The executable is looked up on the snapshot's PATH, not on the PATH of this process.
//
// Child output never reaches os.Stdout, which is reserved for link directives.
// It streams into the vertex carried by ctx, or is logged line by line when there is none.
func (r *Runner) Run(ctx context.Context, cmd domain.Command, env domain.Env) error {
	line := cmd.String()
	dir := env.Resolve(cmd.Dir)

	executable, err := resolveExecutable(cmd.Program, dir, env)
	if err != nil {
		return spawnError(line, err)
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands come from the build configuration

	// exec.CommandContext sets Args[0] to the resolved path.
	// Keep the name as invoked so tools that inspect argv[0] behave as from a shell.
	c.Args[0] = cmd.Program
	c.Dir = dir
	c.Env = env.Environ()

	if v, ok := ports.VertexFromContext(ctx); ok {
		c.Stdout = v.Stdout()
		c.Stderr = v.Stderr()
		err = c.Run()
	} else {
		stdout := newLineWriter(r.logger.Info)
		stderr := newLineWriter(r.logger.Warn)
		c.Stdout = stdout
		c.Stderr = stderr
		err = c.Run()
		stdout.Flush()
		stderr.Flush()
	}

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		failed := zerr.Wrap(domain.ErrNonZeroExit, fmt.Sprintf("%s returned %s", line, exitErr.ProcessState))
		failed = zerr.With(failed, "command", line)
		return zerr.With(failed, "exit_code", exitErr.ExitCode())
	}
	return spawnError(line, err)
}

func spawnError(line string, cause error) error {
	err := zerr.Wrap(domain.ErrSpawnFailed, fmt.Sprintf("failed to start %s (%v)", line, cause))
	err = zerr.With(err, "command", line)
	return zerr.With(err, "cause", cause.Error())
}

// resolveExecutable finds the program to start.
// Bare names are searched on the snapshot's PATH, relative paths are taken from dir.
func resolveExecutable(program, dir string, env domain.Env) (string, error) {
	switch {
	case program == "":
		return "", exec.ErrNotFound
	case filepath.IsAbs(program):
		return program, nil
	case strings.ContainsRune(program, os.PathSeparator) || strings.ContainsRune(program, '/'):
		return filepath.Join(dir, program), nil
	}
	path, _ := env.Lookup("PATH")
	return lookPath(program, path, dir)
}

// lookPath searches for an executable in the directories of a PATH value.
func lookPath(file, path, dir string) (string, error) {
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, entry := range filepath.SplitList(path) {
		if entry == "" {
			// Unix shell semantics: path element "" means "."
			entry = dir
		}
		candidate := filepath.Join(entry, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
