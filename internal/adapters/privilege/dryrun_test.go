package privilege_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/meowstrap/internal/adapters/privilege"
	"go.trai.ch/meowstrap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestDryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := filepath.Join(t.TempDir(), "newsys")
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("dry-run: sudo install -d -m 755 -- "+root+"/tmp/meow"),
		mockLogger.EXPECT().Info("dry-run: sudo tee -- "+root+"/etc/meow/meow.toml"),
		mockLogger.EXPECT().Info("dry-run: sudo chmod 644 -- "+root+"/etc/meow/meow.toml"),
		mockLogger.EXPECT().Info("dry-run: sudo meow --root "+root+" sync"),
		mockLogger.EXPECT().Info("dry-run: sudo install -D -m 755 -- meow "+root+"/usr/bin/meow"),
		mockLogger.EXPECT().Info("dry-run: sudo find "+root+" -mindepth 1 -delete"),
		mockLogger.EXPECT().Info("dry-run: sudo rm -rf -- "+root+"/tmp/meow"),
	)

	fs := privilege.NewDryRun(privilege.NewGateway([]string{"sudo"}), mockLogger)
	ctx := context.Background()

	require.NoError(t, fs.MkdirAll(ctx, root+"/tmp/meow", 0o755))
	require.NoError(t, fs.WriteFile(ctx, root+"/etc/meow/meow.toml", []byte("x"), 0o644))
	require.NoError(t, fs.Run(ctx, []string{"meow", "--root", root, "sync"}, nil, nil))
	require.NoError(t, fs.CopyFile(ctx, "meow", root+"/usr/bin/meow", 0o755))
	require.NoError(t, fs.RemoveContents(ctx, root))
	require.NoError(t, fs.RemoveAll(ctx, root+"/tmp/meow"))

	assert.NoDirExists(t, root, "dry run must not touch the filesystem")
}
