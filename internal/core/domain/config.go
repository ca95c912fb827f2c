package domain

// Config describes where the native dependency lives and which tools build it.
type Config struct {
	// Root is the repository root, relative to the package directory.
	Root string

	Bridge    BridgeConfig
	Submodule SubmoduleConfig
	Toolchain ToolchainConfig
	Native    NativeConfig
	Vars      EnvVars
}

// BridgeConfig configures the interface-binding generator.
type BridgeConfig struct {
	Program string
	Entry   string
	// Output is the file the generator writes. Relative paths are placed under OUT_DIR when set.
	Output string
}

// SubmoduleConfig configures the submodule checkout.
type SubmoduleConfig struct {
	Recursive bool
}

// ToolchainConfig configures the dependency-fetching toolchain.
type ToolchainConfig struct {
	// Dir is the toolchain checkout, relative to Root.
	Dir         string
	SyncProgram string
	SyncArgs    []string
}

// NativeConfig configures the native build.
type NativeConfig struct {
	Layout    Layout
	Generator string
	Executor  string
	Target    string
	Library   string
}

// EnvVars names the environment variables read by the pipeline.
type EnvVars struct {
	Profile string
	Path    string
	OutDir  string
}

// DefaultConfig returns the configuration for the WebRTC checkout driven by depot_tools.
func DefaultConfig() Config {
	return Config{
		Root: "..",
		Bridge: BridgeConfig{
			Program: "cxxbridge",
			Entry:   "src/lib.rs",
			Output:  "lib.rs.cc",
		},
		Toolchain: ToolchainConfig{
			Dir:         "depot_tools",
			SyncProgram: "gclient",
			SyncArgs:    []string{"sync", "--nohooks", "--no-history"},
		},
		Native: NativeConfig{
			Layout:    DefaultLayout(),
			Generator: "gn",
			Executor:  "ninja",
			Target:    ":webrtc",
			Library:   "webrtc",
		},
		Vars: EnvVars{
			Profile: "PROFILE",
			Path:    "PATH",
			OutDir:  "OUT_DIR",
		},
	}
}

// SubmoduleCommand returns the command that checks out registered submodules.
func (c Config) SubmoduleCommand() Command {
	args := []string{"submodule", "update", "--init"}
	if c.Submodule.Recursive {
		args = append(args, "--recursive")
	}
	return NewCommand("git", args...)
}
