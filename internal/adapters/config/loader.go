// Package config loads the installer manifest and provides runtime settings.
package config

import (
	_ "embed"
	"errors"
	"os"

	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed base.yaml
var baseManifest []byte

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader using YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the manifest at path, or the built-in base manifest when path is empty.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	if path == "" {
		return Parse(baseManifest)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", path)
	}

	manifest, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return manifest, nil
}

// Parse decodes a YAML manifest document.
func Parse(data []byte) (*domain.Manifest, error) {
	var dto ManifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, err)
	}

	return &domain.Manifest{
		Index:    dto.Index,
		Keys:     dto.Keys,
		Packages: string(dto.Packages),
	}, nil
}

// Base returns the built-in base manifest.
func Base() *domain.Manifest {
	manifest, err := Parse(baseManifest)
	if err != nil {
		panic(err)
	}
	return manifest
}
