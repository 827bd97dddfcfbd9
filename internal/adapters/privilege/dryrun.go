package privilege

import (
	"context"
	"io"
	"os"
	"strings"

	"go.trai.ch/meowstrap/internal/core/ports"
)

var _ ports.PrivilegedFS = (*DryRun)(nil)

// DryRun logs the commands a Gateway would run and performs none of them.
type DryRun struct {
	gateway *Gateway
	logger  ports.Logger
}

// NewDryRun creates a DryRun that describes commands in terms of gateway.
func NewDryRun(gateway *Gateway, logger ports.Logger) *DryRun {
	return &DryRun{gateway: gateway, logger: logger}
}

// MkdirAll logs the directory creation.
func (d *DryRun) MkdirAll(_ context.Context, path string, mode os.FileMode) error {
	d.log("install", "-d", "-m", octal(mode), "--", path)
	return nil
}

// WriteFile logs the file write.
func (d *DryRun) WriteFile(_ context.Context, path string, _ []byte, mode os.FileMode) error {
	d.log("tee", "--", path)
	d.log("chmod", octal(mode), "--", path)
	return nil
}

// RemoveAll logs the removal.
func (d *DryRun) RemoveAll(_ context.Context, path string) error {
	d.log("rm", "-rf", "--", path)
	return nil
}

// RemoveContents logs the removal.
func (d *DryRun) RemoveContents(_ context.Context, path string) error {
	d.log("find", path, "-mindepth", "1", "-delete")
	return nil
}

// CopyFile logs the copy.
func (d *DryRun) CopyFile(_ context.Context, src, dst string, mode os.FileMode) error {
	d.log("install", "-D", "-m", octal(mode), "--", src, dst)
	return nil
}

// Run logs the command.
func (d *DryRun) Run(_ context.Context, argv []string, _, _ io.Writer) error {
	d.log(argv...)
	return nil
}

func (d *DryRun) log(argv ...string) {
	d.logger.Info("dry-run: " + strings.Join(d.gateway.Argv(argv...), " "))
}
