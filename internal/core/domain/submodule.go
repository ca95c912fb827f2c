package domain

// SubmoduleStatus reports whether a registered submodule is checked out at its pinned commit.
type SubmoduleStatus struct {
	Name     string
	Path     string
	Expected string
	Current  string
}

// Initialized reports whether the submodule has been checked out at all.
func (s SubmoduleStatus) Initialized() bool {
	return s.Current != ""
}

// Pinned reports whether the checkout matches the commit recorded by the superproject.
func (s SubmoduleStatus) Pinned() bool {
	return s.Initialized() && s.Current == s.Expected
}
