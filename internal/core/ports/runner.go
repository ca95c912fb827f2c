// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rtcbuild/internal/core/domain"
)

// Runner executes external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd inside the given environment snapshot and blocks until it exits.
	//
	// The snapshot's variables are the complete environment of the child process, and
	// cmd.Dir is resolved against the snapshot's working directory.
	//
	// It returns nil on a zero exit status, an error wrapping domain.ErrSpawnFailed when the
	// program could not be started, and an error wrapping domain.ErrNonZeroExit otherwise.
	Run(ctx context.Context, cmd domain.Command, env domain.Env) error
}
