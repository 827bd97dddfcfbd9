package domain

import "strings"

// Manifest is the installer input: where packages come from, how to trust them,
// and which packages make up the base system.
type Manifest struct {
	// Index is the package source URL.
	Index string

	// Keys are trust keys for the index.
	Keys []string

	// Packages is the curated package list as whitespace-separated text.
	Packages string
}

// Override returns a copy of m with index and keys replaced when they are set.
func (m Manifest) Override(index string, keys []string) Manifest {
	if strings.TrimSpace(index) != "" {
		m.Index = index
	}
	if len(keys) > 0 {
		m.Keys = keys
	}
	return m
}

// Config builds the BootstrapConfig described by the manifest.
func (m Manifest) Config() (BootstrapConfig, error) {
	return BuildConfig(m.Index, m.Packages, m.Keys)
}
