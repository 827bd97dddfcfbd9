package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/meowstrap/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/meowstrap/internal/adapters/meow"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/meowstrap/internal/adapters/privilege"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/meowstrap/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/meowstrap/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			privilege.NodeID,
			meow.ManagerNodeID,
			meow.EncoderNodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			privileged, err := graft.Dep[ports.PrivilegedFS](ctx)
			if err != nil {
				return nil, err
			}

			manager, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			encoder, err := graft.Dep[ports.ConfigEncoder](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(privileged, manager, encoder, hasher, telemetry, log), nil
		},
	})
}
