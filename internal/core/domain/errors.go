package domain

import "go.trai.ch/zerr"

var (
	// ErrSpawnFailed is returned when an external program could not be started.
	ErrSpawnFailed = zerr.New("command could not be started")

	// ErrNonZeroExit is returned when an external program ran but reported failure.
	ErrNonZeroExit = zerr.New("command exited with non-zero status")

	// ErrMissingEnv is returned when a required environment variable is absent or empty.
	ErrMissingEnv = zerr.New("required environment variable is not set")

	// ErrPathResolution is returned when a required directory does not exist or cannot be canonicalized.
	ErrPathResolution = zerr.New("path could not be resolved")

	// ErrEncoding is returned when a computed path cannot be written as a directive.
	ErrEncoding = zerr.New("path is not representable as directive text")

	// ErrPipelineFailed is returned when the pipeline reaches a stage it cannot run.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrInvalidConfig is returned when the configuration file is malformed.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
