package domain

import "path/filepath"

// Layout names the fixed directories of the native build tree.
type Layout struct {
	SourceDir  string
	OutputRoot string
	ObjectDir  string
}

// DefaultLayout returns the gn layout: src/out/<profile>/obj.
func DefaultLayout() Layout {
	return Layout{
		SourceDir:  "src",
		OutputRoot: "out",
		ObjectDir:  "obj",
	}
}

// Paths holds every directory derived from a build profile.
type Paths struct {
	// GenerateTarget is passed to the generator, relative to SourceDir.
	GenerateTarget string
	// BuildDir is the working directory of the build executor, relative to the repository root.
	BuildDir string
	// LinkSearchDir is where the compiled library is found, relative to the repository root.
	LinkSearchDir string
}

// ProfilePaths derives all profile-scoped directories from one profile name.
// BuildDir is SourceDir joined with GenerateTarget, and LinkSearchDir is BuildDir joined with ObjectDir.
func ProfilePaths(layout Layout, profile string) Paths {
	target := filepath.Join(layout.OutputRoot, profile)
	buildDir := filepath.Join(layout.SourceDir, target)
	return Paths{
		GenerateTarget: target,
		BuildDir:       buildDir,
		LinkSearchDir:  filepath.Join(buildDir, layout.ObjectDir),
	}
}
