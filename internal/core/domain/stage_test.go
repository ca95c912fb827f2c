package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rtcbuild/internal/core/domain"
)

func TestNext_LinearChain(t *testing.T) {
	want := []domain.Stage{
		domain.StageStub,
		domain.StageRelocate,
		domain.StageSubmoduleInit,
		domain.StagePathAugment,
		domain.StageSync,
		domain.StageResolveProfile,
		domain.StageGenerate,
		domain.StageBuild,
		domain.StageEmitLinkDirectives,
		domain.StageDone,
	}

	var got []domain.Stage
	for s := domain.StageStub; ; s = domain.Next(s, nil) {
		got = append(got, s)
		if s.IsTerminal() {
			break
		}
	}
	assert.Equal(t, want, got)
}

func TestNext_ErrorFails(t *testing.T) {
	boom := errors.New("boom")
	for s := domain.StageStub; s <= domain.StageEmitLinkDirectives; s++ {
		assert.Equal(t, domain.StageFailed, domain.Next(s, boom), s.String())
	}
}

func TestNext_TerminalIsAbsorbing(t *testing.T) {
	assert.Equal(t, domain.StageDone, domain.Next(domain.StageDone, errors.New("late")))
	assert.Equal(t, domain.StageFailed, domain.Next(domain.StageFailed, nil))
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "submodule-init", domain.StageSubmoduleInit.String())
	assert.Equal(t, "unknown", domain.Stage(42).String())
}
