package domain

// Stage is a state of the build pipeline.
type Stage int

const (
	// StageStub emits the interface-binding stubs.
	StageStub Stage = iota
	// StageRelocate moves to the repository root.
	StageRelocate
	// StageSubmoduleInit checks out the toolchain submodule.
	StageSubmoduleInit
	// StagePathAugment puts the toolchain on the search path.
	StagePathAugment
	// StageSync fetches the dependency sources.
	StageSync
	// StageResolveProfile reads the build profile.
	StageResolveProfile
	// StageGenerate generates the native build files.
	StageGenerate
	// StageBuild compiles the native library.
	StageBuild
	// StageEmitLinkDirectives prints the link directives.
	StageEmitLinkDirectives
	// StageDone is the terminal success state.
	StageDone
	// StageFailed is the terminal failure state.
	StageFailed
)

var stageNames = [...]string{
	StageStub:               "stub",
	StageRelocate:           "relocate",
	StageSubmoduleInit:      "submodule-init",
	StagePathAugment:        "path-augment",
	StageSync:               "sync",
	StageResolveProfile:     "resolve-profile",
	StageGenerate:           "generate",
	StageBuild:              "build",
	StageEmitLinkDirectives: "emit-link-directives",
	StageDone:               "done",
	StageFailed:             "failed",
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// IsTerminal reports whether no further transition is possible.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}

// Next returns the state that follows s given the outcome of running it.
// Any error moves to StageFailed. Terminal states never change.
func Next(s Stage, err error) Stage {
	if s.IsTerminal() {
		return s
	}
	if err != nil || s < StageStub || s > StageEmitLinkDirectives {
		return StageFailed
	}
	return s + 1
}
