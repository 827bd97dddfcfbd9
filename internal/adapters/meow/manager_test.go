package meow_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/meowstrap/internal/adapters/meow"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports"
	"go.trai.ch/meowstrap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type exitError int

func (e exitError) Error() string { return "exit status" }
func (e exitError) ExitCode() int { return int(e) }

func testRoot(t *testing.T) domain.TargetRoot {
	t.Helper()
	root, err := domain.ResolveRoot(filepath.Join(t.TempDir(), "newsys"))
	require.NoError(t, err)
	return root
}

func TestManager_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := testRoot(t)
	mockFS := mocks.NewMockPrivilegedFS(ctrl)
	manager := meow.NewManager("/opt/meow/bin/meow", mockFS)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	mockFS.EXPECT().
		Run(gomock.Any(), []string{"/opt/meow/bin/meow", "--root", root.Path(), "sync"}, stdout, stderr).
		Return(nil)

	require.NoError(t, manager.Sync(context.Background(), root, stdout, stderr))
}

func TestManager_Sync_LogsToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := testRoot(t)
	mockFS := mocks.NewMockPrivilegedFS(ctrl)
	mockVertex := mocks.NewMockVertex(ctrl)
	manager := meow.NewManager("/opt/meow/bin/meow", mockFS)

	mockVertex.EXPECT().Log(domain.LogLevelDebug, "/opt/meow/bin/meow --root "+root.Path()+" sync")
	mockFS.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	require.NoError(t, manager.Sync(ctx, root, nil, nil))
}

func TestManager_Sync_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := testRoot(t)
	mockFS := mocks.NewMockPrivilegedFS(ctrl)
	manager := meow.NewManager("/opt/meow/bin/meow", mockFS)

	mockFS.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.Join(domain.ErrPrivilegedCommandFailed, exitError(4)))

	err := manager.Sync(context.Background(), root, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSyncFailed)
	assert.Equal(t, 4, domain.ExitCode(err))
}

func TestManager_RelativeBinary(t *testing.T) {
	manager := meow.NewManager(domain.DefaultPackageManager, nil)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "target", "release", "meow"), manager.Binary())
}

func TestManager_Verify(t *testing.T) {
	dir := t.TempDir()

	executable := filepath.Join(dir, "meow")
	require.NoError(t, os.WriteFile(executable, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // test binary must be executable
	assert.NoError(t, meow.NewManager(executable, nil).Verify())

	plain := filepath.Join(dir, "meow.txt")
	require.NoError(t, os.WriteFile(plain, []byte("text"), 0o600))
	assert.ErrorIs(t, meow.NewManager(plain, nil).Verify(), domain.ErrPackageManagerMissing)

	assert.ErrorIs(t, meow.NewManager(dir, nil).Verify(), domain.ErrPackageManagerMissing)

	err := meow.NewManager(filepath.Join(dir, "missing"), nil).Verify()
	assert.ErrorIs(t, err, domain.ErrPackageManagerMissing)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
