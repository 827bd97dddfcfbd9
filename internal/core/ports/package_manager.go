package ports

import (
	"context"
	"io"

	"go.trai.ch/meowstrap/internal/core/domain"
)

// PackageManager drives the external package manager that populates a root.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Binary returns the path of the package manager executable on the host.
	Binary() string

	// Verify checks that the executable exists and can be run.
	Verify() error

	// Sync reconciles the packages installed in root against its configuration.
	// Output of the package manager is streamed verbatim to stdout and stderr.
	Sync(ctx context.Context, root domain.TargetRoot, stdout, stderr io.Writer) error
}
