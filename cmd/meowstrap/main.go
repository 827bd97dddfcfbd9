// Package main is the entry point for the meowstrap installer.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/meowstrap/cmd/meowstrap/commands"
	"go.trai.ch/meowstrap/internal/app"
	"go.trai.ch/meowstrap/internal/core/domain"
	_ "go.trai.ch/meowstrap/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...graft.Option) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Interface - CLI; components are built once flags are parsed
	cli := commands.New(func(ctx context.Context, settings domain.Settings) (*app.Components, error) {
		return app.Build(ctx, settings, opts...)
	})

	// 2. Execution
	if err := cli.Execute(ctx); err != nil {
		if log := cli.Logger(); log != nil {
			log.Error(err)
		} else {
			// Logger is not available yet if initialization failed
			// Write directly to stderr
			_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		}
		return domain.ExitCode(err)
	}
	return 0
}
