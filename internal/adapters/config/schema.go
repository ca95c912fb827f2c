package config

// File represents the structure of the rtcbuild.yaml configuration file.
// Every field is optional; unset fields keep their defaults.
type File struct {
	Root      string       `yaml:"root"`
	Bridge    BridgeDTO    `yaml:"bridge"`
	Submodule SubmoduleDTO `yaml:"submodule"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
	Native    NativeDTO    `yaml:"native"`
	Env       EnvDTO       `yaml:"env"`
}

// BridgeDTO configures the interface-binding generator.
type BridgeDTO struct {
	Program string `yaml:"program"`
	Entry   string `yaml:"entry"`
	Output  string `yaml:"output"`
}

// SubmoduleDTO configures the submodule checkout.
type SubmoduleDTO struct {
	Recursive *bool `yaml:"recursive"`
}

// ToolchainDTO configures the dependency-fetching toolchain.
type ToolchainDTO struct {
	Dir         string   `yaml:"dir"`
	SyncProgram string   `yaml:"sync_program"`
	SyncArgs    []string `yaml:"sync_args"`
}

// NativeDTO configures the native build.
type NativeDTO struct {
	SourceDir  string `yaml:"source_dir"`
	OutputRoot string `yaml:"output_root"`
	ObjectDir  string `yaml:"object_dir"`
	Generator  string `yaml:"generator"`
	Executor   string `yaml:"executor"`
	Target     string `yaml:"target"`
	Library    string `yaml:"library"`
}

// EnvDTO names the environment variables read by the pipeline.
type EnvDTO struct {
	Profile string `yaml:"profile"`
	Path    string `yaml:"path"`
	OutDir  string `yaml:"out_dir"`
}
