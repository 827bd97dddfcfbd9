// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/meowstrap/internal/adapters/config"
	_ "go.trai.ch/meowstrap/internal/adapters/fs"
	_ "go.trai.ch/meowstrap/internal/adapters/logger"
	_ "go.trai.ch/meowstrap/internal/adapters/meow"
	_ "go.trai.ch/meowstrap/internal/adapters/privilege"
	_ "go.trai.ch/meowstrap/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/meowstrap/internal/app"
	_ "go.trai.ch/meowstrap/internal/engine/installer"
)
