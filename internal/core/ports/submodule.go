package ports

import "go.trai.ch/rtcbuild/internal/core/domain"

// SubmoduleInspector reports the checkout state of a repository's submodules.
//
//go:generate mockgen -source=submodule.go -destination=mocks/mock_submodule.go -package=mocks
type SubmoduleInspector interface {
	// Status lists every registered submodule of the repository at root.
	Status(root string) ([]domain.SubmoduleStatus, error)
}
