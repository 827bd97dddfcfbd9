package privilege

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/internal/adapters/config"
	"go.trai.ch/meowstrap/internal/adapters/logger"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
)

// NodeID is the unique identifier for the privilege gateway node.
const NodeID graft.ID = "adapter.privilege"

func init() {
	graft.Register(graft.Node[ports.PrivilegedFS]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PrivilegedFS, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			escalation := settings.Escalation
			if os.Geteuid() == 0 {
				escalation = nil
			}

			gateway := NewGateway(escalation)
			if settings.DryRun {
				log.Warn("dry run: the target root will not be modified")
				return NewDryRun(gateway, log), nil
			}
			return gateway, nil
		},
	})
}
