// Package installer implements the bootstrap protocol for a target root.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single bootstrap run.
type Options struct {
	// Reset wipes the contents of the root before anything else.
	Reset bool
}

// Installer runs the linear bootstrap protocol:
// reset, prepare, write-config, sync, self-install, cleanup.
// Every fatal error stops the run; reset and cleanup failures are only reported.
type Installer struct {
	fs        ports.PrivilegedFS
	manager   ports.PackageManager
	encoder   ports.ConfigEncoder
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates an Installer. Package manager output goes to os.Stdout and os.Stderr.
func New(
	fs ports.PrivilegedFS,
	manager ports.PackageManager,
	encoder ports.ConfigEncoder,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Installer {
	return &Installer{
		fs:        fs,
		manager:   manager,
		encoder:   encoder,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// SetOutput redirects the package manager's output streams.
func (i *Installer) SetOutput(stdout, stderr io.Writer) {
	i.stdout = stdout
	i.stderr = stderr
}

// Run bootstraps root with cfg.
//
// The returned report lists every step that ran, including the failing one.
func (i *Installer) Run(
	ctx context.Context,
	root domain.TargetRoot,
	cfg domain.BootstrapConfig,
	opts Options,
) (*domain.Report, error) {
	start := time.Now()
	report := &domain.Report{Root: root}

	if root.IsZero() {
		return report, zerr.Wrap(domain.ErrInvalidRoot, "root was not resolved")
	}
	if err := i.manager.Verify(); err != nil {
		return report, err
	}

	data, err := i.encoder.Encode(cfg)
	if err != nil {
		return report, err
	}
	report.ConfigDigest = i.hasher.HashBytes(data)

	if opts.Reset {
		i.step(ctx, report, domain.StepReset, func(ctx context.Context, _ ports.Vertex) (domain.StepStatus, error) {
			return i.reset(ctx, root)
		})
	}

	steps := []struct {
		step domain.Step
		run  func(context.Context, ports.Vertex) (domain.StepStatus, error)
	}{
		{domain.StepPrepare, func(ctx context.Context, _ ports.Vertex) (domain.StepStatus, error) {
			return i.prepare(ctx, root)
		}},
		{domain.StepWriteConfig, func(ctx context.Context, _ ports.Vertex) (domain.StepStatus, error) {
			return i.writeConfig(ctx, root, data, report.ConfigDigest)
		}},
		{domain.StepSync, func(ctx context.Context, v ports.Vertex) (domain.StepStatus, error) {
			return i.sync(ctx, root, v)
		}},
		{domain.StepSelfInstall, func(ctx context.Context, _ ports.Vertex) (domain.StepStatus, error) {
			return i.selfInstall(ctx, root)
		}},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if status, err := i.step(ctx, report, s.step, s.run); status.IsTerminal() {
			return report, err
		}
	}

	i.step(ctx, report, domain.StepCleanup, func(ctx context.Context, _ ports.Vertex) (domain.StepStatus, error) {
		return i.cleanup(ctx, root)
	})

	report.Elapsed = time.Since(start)
	i.logger.Success(fmt.Sprintf("finished in %s", report.Elapsed.Round(time.Millisecond)))
	return report, nil
}

// step runs fn inside a telemetry vertex and records its outcome.
func (i *Installer) step(
	ctx context.Context,
	report *domain.Report,
	step domain.Step,
	fn func(context.Context, ports.Vertex) (domain.StepStatus, error),
) (domain.StepStatus, error) {
	start := time.Now()
	ctx, vertex := i.telemetry.Record(ctx, string(step))

	status, err := fn(ctx, vertex)
	if status == domain.StepStatusFailed || status == domain.StepStatusWarned {
		err = zerr.With(zerr.Wrap(err, ""), "step", string(step))
	}
	if status == domain.StepStatusUnchanged {
		vertex.Cached()
	}
	vertex.Complete(err)

	elapsed := time.Since(start)
	report.Steps = append(report.Steps, domain.StepResult{
		Step:     step,
		Status:   status,
		Duration: elapsed,
		Err:      err,
	})

	switch status {
	case domain.StepStatusWarned:
		i.logger.WarnError(err)
	case domain.StepStatusFailed:
	default:
		i.logger.Success(fmt.Sprintf("%s (%s)", step, elapsed.Round(time.Millisecond)))
	}
	return status, err
}

func (i *Installer) reset(ctx context.Context, root domain.TargetRoot) (domain.StepStatus, error) {
	i.logger.Info("removing contents of " + root.Path())
	if err := i.fs.RemoveContents(ctx, root.Path()); err != nil {
		return domain.StepStatusWarned, zerr.With(errors.Join(domain.ErrResetFailed, err), "root", root.Path())
	}
	return domain.StepStatusCompleted, nil
}

func (i *Installer) prepare(ctx context.Context, root domain.TargetRoot) (domain.StepStatus, error) {
	for _, dir := range root.Skeleton() {
		if err := root.Confine(dir); err != nil {
			return domain.StepStatusFailed, errors.Join(domain.ErrPreparationFailed, err)
		}
		if err := i.fs.MkdirAll(ctx, dir, domain.DirMode); err != nil {
			return domain.StepStatusFailed, zerr.With(errors.Join(domain.ErrPreparationFailed, err), "path", dir)
		}
	}
	return domain.StepStatusCompleted, nil
}

func (i *Installer) writeConfig(
	ctx context.Context,
	root domain.TargetRoot,
	data []byte,
	digest string,
) (domain.StepStatus, error) {
	path := root.ConfigPath()
	if err := root.Confine(path); err != nil {
		return domain.StepStatusFailed, errors.Join(domain.ErrConfigWriteFailed, err)
	}

	status := domain.StepStatusCompleted
	if existing, err := i.hasher.HashFile(path); err == nil && existing == digest {
		status = domain.StepStatusUnchanged
	}

	if err := i.fs.WriteFile(ctx, path, data, domain.ConfigMode); err != nil {
		return domain.StepStatusFailed, zerr.With(errors.Join(domain.ErrConfigWriteFailed, err), "path", path)
	}
	i.logger.Info(fmt.Sprintf("wrote %s (%s)", path, digest))
	return status, nil
}

func (i *Installer) sync(ctx context.Context, root domain.TargetRoot, vertex ports.Vertex) (domain.StepStatus, error) {
	stdout := io.MultiWriter(i.stdout, vertex.Stdout())
	stderr := io.MultiWriter(i.stderr, vertex.Stderr())

	if err := i.manager.Sync(ctx, root, stdout, stderr); err != nil {
		if !errors.Is(err, domain.ErrSyncFailed) {
			err = errors.Join(domain.ErrSyncFailed, err)
		}
		return domain.StepStatusFailed, err
	}
	return domain.StepStatusCompleted, nil
}

func (i *Installer) selfInstall(ctx context.Context, root domain.TargetRoot) (domain.StepStatus, error) {
	src, dst := i.manager.Binary(), root.BinaryPath()
	if err := root.Confine(dst); err != nil {
		return domain.StepStatusFailed, errors.Join(domain.ErrSelfInstallFailed, err)
	}

	status := domain.StepStatusCompleted
	if want, err := i.hasher.HashFile(src); err == nil {
		if have, err := i.hasher.HashFile(dst); err == nil && have == want {
			status = domain.StepStatusUnchanged
		}
	}

	if err := i.fs.CopyFile(ctx, src, dst, domain.BinaryMode); err != nil {
		err = zerr.With(errors.Join(domain.ErrSelfInstallFailed, err), "path", dst)
		return domain.StepStatusFailed, zerr.With(err, "source", src)
	}
	return status, nil
}

func (i *Installer) cleanup(ctx context.Context, root domain.TargetRoot) (domain.StepStatus, error) {
	if err := i.fs.RemoveAll(ctx, root.TempDir()); err != nil {
		return domain.StepStatusWarned, zerr.With(errors.Join(domain.ErrCleanupFailed, err), "path", root.TempDir())
	}
	return domain.StepStatusCompleted, nil
}
