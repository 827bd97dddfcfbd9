package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/internal/adapters/config"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			if settings.Journal == "" {
				return New(), nil
			}
			return NewJournal(settings.Journal)
		},
	})
}
