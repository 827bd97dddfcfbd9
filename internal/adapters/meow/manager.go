// Package meow drives the meow package manager and writes its configuration.
package meow

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageManager = (*Manager)(nil)

// Manager runs the meow binary against a target root through a PrivilegedFS.
type Manager struct {
	binary string
	fs     ports.PrivilegedFS
}

// NewManager creates a Manager for the meow binary at binary.
// Relative paths are resolved against the working directory.
func NewManager(binary string, fs ports.PrivilegedFS) *Manager {
	if abs, err := filepath.Abs(binary); err == nil {
		binary = abs
	}
	return &Manager{binary: binary, fs: fs}
}

// Binary returns the absolute path of the meow binary.
func (m *Manager) Binary() string {
	return m.binary
}

// Verify checks that the meow binary is a regular, executable file.
func (m *Manager) Verify() error {
	info, err := os.Stat(m.binary)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrPackageManagerMissing, err), "path", m.binary)
	}
	if !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
		err := zerr.Wrap(domain.ErrPackageManagerMissing, "not an executable file")
		return zerr.With(zerr.With(err, "path", m.binary), "mode", info.Mode().String())
	}
	return nil
}

// Sync runs `meow --root <root> sync` and streams its output.
func (m *Manager) Sync(ctx context.Context, root domain.TargetRoot, stdout, stderr io.Writer) error {
	argv := SyncArgv(m.binary, root)
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		vertex.Log(domain.LogLevelDebug, strings.Join(argv, " "))
	}

	if err := m.fs.Run(ctx, argv, stdout, stderr); err != nil {
		return zerr.With(errors.Join(domain.ErrSyncFailed, err), "root", root.Path())
	}
	return nil
}

// SyncArgv returns the argument vector that syncs root with binary.
func SyncArgv(binary string, root domain.TargetRoot) []string {
	return []string{binary, "--root", root.Path(), "sync"}
}
