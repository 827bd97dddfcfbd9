package meow

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/internal/adapters/config"
	"go.trai.ch/meowstrap/internal/adapters/privilege"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
)

const (
	// ManagerNodeID is the graft node that provides the package manager driver.
	ManagerNodeID graft.ID = "adapter.meow.manager"
	// EncoderNodeID is the graft node that provides the configuration encoder.
	EncoderNodeID graft.ID = "adapter.meow.encoder"
)

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, privilege.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			fs, err := graft.Dep[ports.PrivilegedFS](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(settings.PackageManager, fs), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigEncoder]{
		ID:        EncoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigEncoder, error) {
			return NewEncoder(), nil
		},
	})
}
