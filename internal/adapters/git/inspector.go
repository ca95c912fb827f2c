// Package git inspects the submodules of the superproject.
package git

import (
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.trai.ch/rtcbuild/internal/core/domain"
	"go.trai.ch/rtcbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SubmoduleInspector = (*Inspector)(nil)

// Inspector implements ports.SubmoduleInspector with go-git.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Status lists the submodules registered in .gitmodules, sorted by path.
func (i *Inspector) Status(root string) ([]domain.SubmoduleStatus, error) {
	repo, err := gogit.PlainOpen(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open repository"), "path", root)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open worktree"), "path", root)
	}

	subs, err := wt.Submodules()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read submodules"), "path", root)
	}

	statuses := make([]domain.SubmoduleStatus, 0, len(subs))
	for _, sub := range subs {
		st, err := sub.Status()
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to inspect submodule"), "path", sub.Config().Path)
		}
		statuses = append(statuses, domain.SubmoduleStatus{
			Name:     sub.Config().Name,
			Path:     sub.Config().Path,
			Expected: hashString(st.Expected),
			Current:  hashString(st.Current),
		})
	}

	sort.Slice(statuses, func(a, b int) bool {
		return statuses[a].Path < statuses[b].Path
	})
	return statuses, nil
}

func hashString(h plumbing.Hash) string {
	if h.IsZero() {
		return ""
	}
	return h.String()
}
