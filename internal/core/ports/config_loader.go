package ports

import "go.trai.ch/nixbisect/internal/core/domain"

// ConfigLoader loads the user settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path, or discovers one from cwd when path is empty.
	// Missing files yield defaults.
	Load(cwd, path string) (domain.Settings, error)
}
