// Package pipeline drives the native dependency build from bridge stubs to link directives.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/rtcbuild/internal/core/domain"
	"go.trai.ch/rtcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result describes what a pipeline run produced.
type Result struct {
	// Stage is the terminal stage the run reached.
	Stage domain.Stage
	// Root is the canonical repository root.
	Root    string
	Profile string
	Paths   domain.Paths
	// Directives are the lines written to the directive stream.
	Directives []string
}

// Pipeline runs the build stages in order and stops at the first failure.
type Pipeline struct {
	runner    ports.Runner
	resolver  ports.PathResolver
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Pipeline.
func New(
	runner ports.Runner,
	resolver ports.PathResolver,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Pipeline {
	return &Pipeline{
		runner:    runner,
		resolver:  resolver,
		logger:    logger,
		telemetry: telemetry,
	}
}

// runState is threaded through the stages. Each stage reads the snapshot left by the previous one.
type runState struct {
	cfg        domain.Config
	env        domain.Env
	out        io.Writer
	root       string
	profile    string
	paths      domain.Paths
	directives []string
}

// Run executes every stage against the initial snapshot env and writes the link directives to out.
// The returned error carries the failing stage under the "stage" metadata key.
func (p *Pipeline) Run(ctx context.Context, cfg domain.Config, env domain.Env, out io.Writer) (Result, error) {
	state := &runState{cfg: cfg, env: env, out: out}

	stage := domain.StageStub
	for !stage.IsTerminal() {
		if err := ctx.Err(); err != nil {
			cancelled := zerr.Wrap(err, "cancelled before stage "+stage.String())
			return state.result(domain.StageFailed), zerr.With(cancelled, "stage", stage.String())
		}

		err := p.runStage(ctx, stage, state)
		next := domain.Next(stage, err)
		if next == domain.StageFailed {
			return state.result(next), zerr.With(err, "stage", stage.String())
		}
		stage = next
	}

	return state.result(stage), nil
}

// runStage records one vertex per stage. Stages that only update the run state are internal.
func (p *Pipeline) runStage(ctx context.Context, stage domain.Stage, state *runState) error {
	p.logger.Info("stage " + stage.String())

	cmd, external := command(stage, state)
	var opts []ports.VertexOption
	if !external {
		opts = append(opts, ports.WithInternal())
	}

	ctx, vertex := p.telemetry.Record(ctx, stage.String(), opts...)
	var err error
	if external {
		vertex.Log(domain.LogLevelInfo, cmd.String())
		err = p.runner.Run(ctx, cmd, state.env)
	} else {
		err = p.dispatch(stage, state)
	}
	vertex.Complete(err)
	return err
}

// command returns the external command a stage runs, if it runs one.
func command(stage domain.Stage, state *runState) (domain.Command, bool) {
	cfg := state.cfg
	switch stage {
	case domain.StageStub:
		return bridgeCommand(state), true
	case domain.StageSubmoduleInit:
		return cfg.SubmoduleCommand(), true
	case domain.StageSync:
		return domain.NewCommand(cfg.Toolchain.SyncProgram, cfg.Toolchain.SyncArgs...), true
	case domain.StageGenerate:
		return domain.NewCommand(cfg.Native.Generator, "gen", state.paths.GenerateTarget).
			In(cfg.Native.Layout.SourceDir), true
	case domain.StageBuild:
		return domain.NewCommand(cfg.Native.Executor, cfg.Native.Target).
			In(state.paths.BuildDir), true
	default:
		return domain.Command{}, false
	}
}

func (p *Pipeline) dispatch(stage domain.Stage, state *runState) error {
	switch stage {
	case domain.StageRelocate:
		return p.relocate(state)
	case domain.StagePathAugment:
		return p.augmentPath(state)
	case domain.StageResolveProfile:
		return p.resolveProfile(state)
	case domain.StageEmitLinkDirectives:
		return p.emitLinkDirectives(state)
	default:
		return zerr.Wrap(domain.ErrPipelineFailed, "no handler for stage "+stage.String())
	}
}

// bridgeCommand runs the bridge generator from the package directory.
// The generated source goes under OUT_DIR when the surrounding build provides one.
func bridgeCommand(state *runState) domain.Command {
	bridge := state.cfg.Bridge
	output := bridge.Output
	if outDir, ok := state.env.Lookup(state.cfg.Vars.OutDir); ok && outDir != "" && !filepath.IsAbs(output) {
		output = filepath.Join(outDir, output)
	}
	return domain.NewCommand(bridge.Program, bridge.Entry, "--output", output)
}

func (p *Pipeline) relocate(state *runState) error {
	root, err := p.resolver.Canonicalize(state.env.Resolve(state.cfg.Root))
	if err != nil {
		return err
	}
	state.root = root
	state.env = state.env.WithDir(root)
	return nil
}

func (p *Pipeline) augmentPath(state *runState) error {
	key := state.cfg.Vars.Path
	current, ok := state.env.Lookup(key)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrMissingEnv, key+" is not set"), "variable", key)
	}

	toolchain, err := p.resolver.Canonicalize(state.env.Resolve(state.cfg.Toolchain.Dir))
	if err != nil {
		return err
	}

	state.env = state.env.With(key, domain.PrependPath(current, toolchain))
	p.logger.Info(fmt.Sprintf("added %s to %s", toolchain, key))
	return nil
}

// resolveProfile fails before any generator or build command is constructed.
func (p *Pipeline) resolveProfile(state *runState) error {
	key := state.cfg.Vars.Profile
	profile, ok := state.env.Lookup(key)
	if !ok || profile == "" {
		return zerr.With(zerr.Wrap(domain.ErrMissingEnv, key+" is not set"), "variable", key)
	}

	state.profile = profile
	state.paths = domain.ProfilePaths(state.cfg.Native.Layout, profile)
	return nil
}

func (p *Pipeline) emitLinkDirectives(state *runState) error {
	lines, err := domain.LinkDirectives{
		SearchDir: filepath.ToSlash(state.paths.LinkSearchDir),
		Library:   state.cfg.Native.Library,
	}.Lines()
	if err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(state.out, line); err != nil {
			return zerr.Wrap(err, "failed to write link directive")
		}
		state.directives = append(state.directives, line)
	}
	return nil
}

func (state *runState) result(stage domain.Stage) Result {
	return Result{
		Stage:      stage,
		Root:       state.root,
		Profile:    state.profile,
		Paths:      state.paths,
		Directives: state.directives,
	}
}
