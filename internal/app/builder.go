package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, telemetry ports.Telemetry) *Components {
	return &Components{
		App:       app,
		Logger:    logger,
		Telemetry: telemetry,
	}
}

// Close ends the telemetry session. It must run once the bootstrap is over.
func (c *Components) Close() error {
	if c.Telemetry == nil {
		return nil
	}
	return c.Telemetry.Close()
}

// Build resolves the component graph for settings.
//
// Settings only exist once flags are parsed, so they are patched into the graph
// and nothing is cached between calls. Extra options are applied last and may
// replace any other node.
func Build(ctx context.Context, settings domain.Settings, opts ...graft.Option) (*Components, error) {
	opts = append([]graft.Option{graft.PatchValue(settings), graft.DisableCache()}, opts...)
	components, _, err := graft.ExecuteFor[*Components](ctx, opts...)
	if err != nil {
		return nil, err
	}
	return components, nil
}
