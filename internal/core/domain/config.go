package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// BootstrapConfig is the configuration document handed to the package manager.
type BootstrapConfig struct {
	// Index is the URL of the remote package source.
	Index string

	// Packages is the ordered list of packages to install.
	// Order follows the curated list and duplicates are kept.
	Packages []string

	// Keys are the trust keys used to verify packages from the index.
	Keys []string
}

// BuildConfig normalizes the curated package list and assembles a BootstrapConfig.
//
// The list is split on whitespace; empty tokens are dropped and first-seen
// order is kept. Deduplication is the caller's concern.
func BuildConfig(index, curated string, keys []string) (BootstrapConfig, error) {
	index = strings.TrimSpace(index)
	if index == "" {
		return BootstrapConfig{}, zerr.Wrap(ErrMissingIndex, "build config")
	}

	packages := Tokenize(curated)
	if len(packages) == 0 {
		return BootstrapConfig{}, zerr.With(zerr.Wrap(ErrEmptyPackageList, "build config"), "index", index)
	}

	return BootstrapConfig{
		Index:    index,
		Packages: packages,
		Keys:     normalizeKeys(keys),
	}, nil
}

// Tokenize splits a whitespace-separated package list into trimmed, non-empty names.
func Tokenize(curated string) []string {
	fields := strings.Fields(curated)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func normalizeKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
