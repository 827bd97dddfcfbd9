package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
)

const (
	// NodeID is the graft node that provides the manifest loader.
	NodeID graft.ID = "adapter.manifest_loader"
	// SettingsNodeID is the graft node that provides the runtime settings.
	// The CLI replaces its value with graft.PatchValue once flags are parsed.
	SettingsNodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[domain.Settings]{
		ID: SettingsNodeID,
		Run: func(_ context.Context) (domain.Settings, error) {
			return domain.DefaultSettings(), nil
		},
	})
}
