package ports

import "go.trai.ch/mist/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration starting at the given working directory and returns the project.
	Load(cwd string) (*domain.Project, error)

	// DiscoverRoot walks up from cwd to find the project root.
	// Returns the directory containing mist.yaml.
	DiscoverRoot(cwd string) (string, error)
}
