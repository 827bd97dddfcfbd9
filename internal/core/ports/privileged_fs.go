// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
	"os"
)

// PrivilegedFS performs filesystem mutations and process launches with elevated privilege.
//
// Every mutation of the target root goes through this interface.
//
//go:generate mockgen -source=privileged_fs.go -destination=mocks/mock_privileged_fs.go -package=mocks
type PrivilegedFS interface {
	// MkdirAll creates path and any missing parents with the given mode.
	MkdirAll(ctx context.Context, path string, mode os.FileMode) error

	// WriteFile creates or truncates path and writes data to it with the given mode.
	WriteFile(ctx context.Context, path string, data []byte, mode os.FileMode) error

	// RemoveAll removes path and everything below it. A missing path is not an error.
	RemoveAll(ctx context.Context, path string) error

	// RemoveContents removes everything below path but keeps path itself.
	RemoveContents(ctx context.Context, path string) error

	// CopyFile copies src to dst with the given mode, creating parent directories of dst.
	CopyFile(ctx context.Context, src, dst string, mode os.FileMode) error

	// Run executes argv without a shell, streaming its output to stdout and stderr.
	// A non-zero exit is returned as an error that carries the exit code.
	Run(ctx context.Context, argv []string, stdout, stderr io.Writer) error
}
