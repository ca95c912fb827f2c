package ports

import "go.trai.ch/rtcbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path.
	// A missing file yields domain.DefaultConfig.
	Load(path string) (domain.Config, error)

	// LoadEnvFile reads "KEY=VALUE" pairs from a dotenv file.
	LoadEnvFile(path string) (map[string]string, error)
}
