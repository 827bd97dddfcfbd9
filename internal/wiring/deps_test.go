package wiring_test

import (
	"bytes"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/meowstrap/internal/adapters/config"
	"go.trai.ch/meowstrap/internal/adapters/fs"
	"go.trai.ch/meowstrap/internal/adapters/logger"
	"go.trai.ch/meowstrap/internal/adapters/meow"
	"go.trai.ch/meowstrap/internal/adapters/privilege"
	"go.trai.ch/meowstrap/internal/adapters/telemetry/progrock"
	"go.trai.ch/meowstrap/internal/app"
	"go.trai.ch/meowstrap/internal/engine/installer"
	_ "go.trai.ch/meowstrap/internal/wiring"
)

func TestRegistry_ContainsEveryNode(t *testing.T) {
	registry := graft.Registry()

	for _, id := range []graft.ID{
		config.NodeID,
		config.SettingsNodeID,
		fs.HasherNodeID,
		logger.NodeID,
		meow.ManagerNodeID,
		meow.EncoderNodeID,
		privilege.NodeID,
		progrock.NodeID,
		installer.NodeID,
		app.AppNodeID,
		app.ComponentsNodeID,
	} {
		assert.Contains(t, registry, id)
	}
}

func TestRegistry_IsAcyclic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graft.PrintGraph(&buf))
	assert.NotEmpty(t, buf.String())
}

func TestRegistry_InstallerEdges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graft.PrintMermaid(&buf))

	out := buf.String()
	assert.Contains(t, out, string(privilege.NodeID)+" --> "+string(installer.NodeID))
	assert.Contains(t, out, string(installer.NodeID)+" --> "+string(app.AppNodeID))
	assert.Contains(t, out, string(config.SettingsNodeID)+" --> "+string(privilege.NodeID))
}
