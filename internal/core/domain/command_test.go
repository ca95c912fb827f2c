package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rtcbuild/internal/core/domain"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		name string
		cmd  domain.Command
		want string
	}{
		{
			name: "plain",
			cmd:  domain.NewCommand("git", "submodule", "update", "--init"),
			want: "git submodule update --init",
		},
		{
			name: "spaces are quoted",
			cmd:  domain.NewCommand("gn", "gen", "out/my profile"),
			want: `gn gen "out/my profile"`,
		},
		{
			name: "empty argument",
			cmd:  domain.NewCommand("echo", ""),
			want: `echo ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestCommand_In(t *testing.T) {
	base := domain.NewCommand("ninja", ":webrtc")
	moved := base.In("src/out/release")

	assert.Empty(t, base.Dir)
	assert.Equal(t, "src/out/release", moved.Dir)
	assert.Equal(t, base.Args, moved.Args)
}

func TestConfig_SubmoduleCommand(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "git submodule update --init", cfg.SubmoduleCommand().String())

	cfg.Submodule.Recursive = true
	assert.Equal(t, "git submodule update --init --recursive", cfg.SubmoduleCommand().String())
}
