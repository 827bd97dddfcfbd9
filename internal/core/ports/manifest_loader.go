package ports

import "go.trai.ch/meowstrap/internal/core/domain"

// ManifestLoader defines the interface for loading the installer manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path. An empty path selects the built-in base manifest.
	Load(path string) (*domain.Manifest, error)
}
