package ports

// PathResolver turns relative directory paths into canonical absolute paths.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type PathResolver interface {
	// Canonicalize returns the absolute, symlink-resolved form of path.
	// It fails if path does not exist or is not a directory.
	Canonicalize(path string) (string, error)
}
