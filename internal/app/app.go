// Package app implements the application layer for meowstrap.
package app

import (
	"context"

	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/meowstrap/internal/engine/installer"
	"go.trai.ch/zerr"
)

// RunOptions configures a single bootstrap.
type RunOptions struct {
	// Reset wipes the target root before bootstrapping it.
	Reset bool
	// Manifest is the path of a manifest file. Empty selects the built-in manifest.
	Manifest string
	// Index overrides the manifest's package index.
	Index string
	// Keys override the manifest's trust keys.
	Keys []string
}

// App represents the main application logic.
type App struct {
	loader    ports.ManifestLoader
	installer *installer.Installer
	logger    ports.Logger
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, inst *installer.Installer, logger ports.Logger) *App {
	return &App{
		loader:    loader,
		installer: inst,
		logger:    logger,
	}
}

// Run bootstraps the root named by rootInput.
//
// The root is validated before anything else, so an unsafe root never
// reaches a privileged operation.
func (a *App) Run(ctx context.Context, rootInput string, opts RunOptions) (*domain.Report, error) {
	// 1. Resolve and validate the root
	root, err := domain.ResolveRoot(rootInput)
	if err != nil {
		return nil, err
	}

	// 2. Load the manifest and build the configuration
	manifest, err := a.loader.Load(opts.Manifest)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	cfg, err := manifest.Override(opts.Index, opts.Keys).Config()
	if err != nil {
		return nil, err
	}

	a.logger.Info("bootstrapping " + root.Path())

	// 3. Run the installer
	return a.installer.Run(ctx, root, cfg, installer.Options{Reset: opts.Reset})
}
