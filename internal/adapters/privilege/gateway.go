// Package privilege runs filesystem mutations and processes with elevated privilege.
package privilege

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"syscall"
	"time"

	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PrivilegedFS = (*Gateway)(nil)

// stopGracePeriod is how long a cancelled command may take to exit after SIGTERM
// before it is killed.
const stopGracePeriod = 10 * time.Second

// Gateway implements ports.PrivilegedFS by running coreutils through an escalation command.
//
// Every operation is a single argument vector; nothing is passed through a shell.
type Gateway struct {
	escalation []string
}

// NewGateway creates a Gateway that prefixes every command with escalation.
// An empty escalation runs commands as the current user.
func NewGateway(escalation []string) *Gateway {
	return &Gateway{escalation: slices.Clone(escalation)}
}

// Argv returns the full argument vector used to run argv.
func (g *Gateway) Argv(argv ...string) []string {
	return append(slices.Clone(g.escalation), argv...)
}

// MkdirAll creates path and its parents.
func (g *Gateway) MkdirAll(ctx context.Context, path string, mode os.FileMode) error {
	return g.run(ctx, nil, "install", "-d", "-m", octal(mode), "--", path)
}

// WriteFile streams data to path on stdin and then sets its mode.
func (g *Gateway) WriteFile(ctx context.Context, path string, data []byte, mode os.FileMode) error {
	if err := g.run(ctx, bytes.NewReader(data), "tee", "--", path); err != nil {
		return err
	}
	return g.run(ctx, nil, "chmod", octal(mode), "--", path)
}

// RemoveAll removes path recursively.
func (g *Gateway) RemoveAll(ctx context.Context, path string) error {
	return g.run(ctx, nil, "rm", "-rf", "--", path)
}

// RemoveContents removes everything below path. It fails if path does not exist.
func (g *Gateway) RemoveContents(ctx context.Context, path string) error {
	return g.run(ctx, nil, "find", path, "-mindepth", "1", "-delete")
}

// CopyFile installs src at dst, creating the parent directories of dst.
func (g *Gateway) CopyFile(ctx context.Context, src, dst string, mode os.FileMode) error {
	return g.run(ctx, nil, "install", "-D", "-m", octal(mode), "--", src, dst)
}

// Run executes argv with its output streamed to stdout and stderr.
func (g *Gateway) Run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return zerr.Wrap(domain.ErrPrivilegedCommandFailed, "empty command")
	}

	full := g.Argv(argv...)
	cmd := command(ctx, full)
	cmd.Stdout = orDiscard(stdout)
	cmd.Stderr = orDiscard(stderr)

	if err := cmd.Run(); err != nil {
		return commandError(ctx, err, full)
	}
	return nil
}

// run executes a coreutils command, keeping its stderr for the error report.
func (g *Gateway) run(ctx context.Context, stdin io.Reader, argv ...string) error {
	full := g.Argv(argv...)
	cmd := command(ctx, full)
	cmd.Stdin = stdin
	cmd.Stdout = io.Discard

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cmdErr := commandError(ctx, err, full)
		if s := strings.TrimSpace(stderr.String()); s != "" {
			cmdErr = zerr.With(cmdErr, "stderr", s)
		}
		return cmdErr
	}
	return nil
}

// command builds a process for argv that receives SIGTERM when ctx is done.
// The escalation command forwards the signal to its child; SIGKILL only
// follows after stopGracePeriod.
func command(ctx context.Context, argv []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is a fixed verb or caller-built vector, no shell involved
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = stopGracePeriod
	return cmd
}

func commandError(ctx context.Context, err error, argv []string) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = errors.Join(err, ctxErr)
	}
	return zerr.With(errors.Join(domain.ErrPrivilegedCommandFailed, err), "argv", argv)
}

func octal(mode os.FileMode) string {
	return fmt.Sprintf("%o", mode.Perm())
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
