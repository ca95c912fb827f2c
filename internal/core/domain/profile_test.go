package domain_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rtcbuild/internal/core/domain"
)

func TestProfilePaths_Default(t *testing.T) {
	paths := domain.ProfilePaths(domain.DefaultLayout(), "release")

	assert.Equal(t, filepath.Join("out", "release"), paths.GenerateTarget)
	assert.Equal(t, filepath.Join("src", "out", "release"), paths.BuildDir)
	assert.Equal(t, filepath.Join("src", "out", "release", "obj"), paths.LinkSearchDir)
}

func TestProfilePaths_DerivationsAgree(t *testing.T) {
	layouts := []domain.Layout{
		domain.DefaultLayout(),
		{SourceDir: "third_party/webrtc", OutputRoot: "build", ObjectDir: "lib"},
	}
	profiles := []string{"debug", "release", "custom-profile", "bench"}

	for _, layout := range layouts {
		for _, profile := range profiles {
			paths := domain.ProfilePaths(layout, profile)

			// The build directory is the generate target under the source directory.
			assert.Equal(t, filepath.Join(layout.SourceDir, paths.GenerateTarget), paths.BuildDir)

			rel, err := filepath.Rel(layout.SourceDir, paths.BuildDir)
			assert.NoError(t, err)
			assert.Equal(t, paths.GenerateTarget, rel)

			// The link search directory extends the build directory by exactly the object leaf.
			assert.Equal(t, paths.BuildDir, filepath.Dir(paths.LinkSearchDir))
			assert.Equal(t, layout.ObjectDir, filepath.Base(paths.LinkSearchDir))

			assert.True(t, strings.HasSuffix(paths.GenerateTarget, profile))
		}
	}
}
