package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rtcbuild/internal/adapters/shell"
	"go.trai.ch/rtcbuild/internal/core/domain"
	"go.trai.ch/rtcbuild/internal/core/ports"
	"go.trai.ch/rtcbuild/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func systemEnv(dir string, extra ...string) domain.Env {
	return domain.NewEnv(dir, append([]string{"PATH=" + os.Getenv("PATH")}, extra...))
}

func TestRunner_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1").Times(1),
		mockLogger.EXPECT().Info("line2").Times(1),
	)

	runner := shell.NewRunner(mockLogger)
	err := runner.Run(context.Background(), domain.NewCommand("sh", "-c", "echo line1; echo line2"), systemEnv(t.TempDir()))
	require.NoError(t, err)
}

func TestRunner_Run_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2").Times(1)

	runner := shell.NewRunner(mockLogger)
	cmd := domain.NewCommand("sh", "-c", "printf part1; sleep 0.1; echo part2")
	err := runner.Run(context.Background(), cmd, systemEnv(t.TempDir()))
	require.NoError(t, err)
}

func TestRunner_Run_StderrIsLoggedAsWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("to stderr").Times(1)

	runner := shell.NewRunner(mockLogger)
	err := runner.Run(context.Background(), domain.NewCommand("sh", "-c", "echo to stderr >&2"), systemEnv(t.TempDir()))
	require.NoError(t, err)
}

func TestRunner_Run_SnapshotIsCompleteEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Setenv("RTCBUILD_PROCESS_ONLY", "leaked")

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("snapshot-value|").Times(1)

	runner := shell.NewRunner(mockLogger)
	cmd := domain.NewCommand("sh", "-c", `echo "$MY_TEST_VAR|$RTCBUILD_PROCESS_ONLY"`)
	err := runner.Run(context.Background(), cmd, systemEnv(t.TempDir(), "MY_TEST_VAR=snapshot-value"))
	require.NoError(t, err)
}

func TestRunner_Run_LooksUpSnapshotPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("success").Times(1)

	toolDir := t.TempDir()
	script := filepath.Join(toolDir, "my-toolchain-tool")
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho success\n"), 0o700))

	runner := shell.NewRunner(mockLogger)
	env := domain.NewEnv(t.TempDir(), []string{"PATH=" + toolDir})
	err := runner.Run(context.Background(), domain.NewCommand("my-toolchain-tool"), env)
	require.NoError(t, err)
}

func TestRunner_Run_WorkingDirectoryIsRelativeToSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	sub := filepath.Join(root, "src", "out", "release")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "marker"), []byte("in build dir\n"), 0o600))

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("in build dir").Times(1)

	runner := shell.NewRunner(mockLogger)
	cmd := domain.NewCommand("cat", "marker").In(filepath.Join("src", "out", "release"))
	err := runner.Run(context.Background(), cmd, systemEnv(root))
	require.NoError(t, err)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	runner := shell.NewRunner(mockLogger)

	cmd := domain.NewCommand("sh", "-c", "exit 42")
	err := runner.Run(context.Background(), cmd, systemEnv(t.TempDir()))
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrNonZeroExit))
	assert.False(t, errors.Is(err, domain.ErrSpawnFailed))
	assert.Contains(t, err.Error(), cmd.String())
	assert.Contains(t, err.Error(), "exit status 42")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, 42, meta["exit_code"])
	assert.Equal(t, cmd.String(), meta["command"])
}

func TestRunner_Run_SpawnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	runner := shell.NewRunner(mockLogger)

	cmd := domain.NewCommand("nonexistent-command-xyz123", "--flag")
	err := runner.Run(context.Background(), cmd, systemEnv(t.TempDir()))
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrSpawnFailed))
	assert.False(t, errors.Is(err, domain.ErrNonZeroExit))
	assert.Contains(t, err.Error(), "nonexistent-command-xyz123 --flag")
	assert.NotContains(t, err.Error(), "exit status")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	_, hasExitCode := zErr.Metadata()["exit_code"]
	assert.False(t, hasExitCode, "a spawn failure must not report an exit status")
}

func TestRunner_Run_MissingWorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	runner := shell.NewRunner(mockLogger)

	cmd := domain.NewCommand("/bin/sh", "-c", "true").In("does-not-exist")
	err := runner.Run(context.Background(), cmd, systemEnv(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSpawnFailed))
}

func TestRunner_Run_StreamsOutputIntoVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The vertex renders the output, so nothing is logged a second time.
	mockLogger := mocks.NewMockLogger(ctrl)

	var stdoutBuf, stderrBuf bytes.Buffer
	mockVertex := mocks.NewMockVertex(ctrl)
	mockVertex.EXPECT().Stdout().Return(&stdoutBuf).AnyTimes()
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)

	runner := shell.NewRunner(mockLogger)
	cmd := domain.NewCommand("sh", "-c", "echo hello to stdout; echo hello to stderr >&2")
	err := runner.Run(ctx, cmd, systemEnv(t.TempDir()))
	require.NoError(t, err)

	assert.True(t, strings.Contains(stdoutBuf.String(), "hello to stdout"))
	assert.True(t, strings.Contains(stderrBuf.String(), "hello to stderr"))
}
