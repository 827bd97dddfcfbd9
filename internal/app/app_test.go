package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/meowstrap/internal/adapters/fs"
	"go.trai.ch/meowstrap/internal/adapters/memfs"
	"go.trai.ch/meowstrap/internal/adapters/meow"
	telemetry "go.trai.ch/meowstrap/internal/adapters/telemetry/progrock"
	"go.trai.ch/meowstrap/internal/app"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/meowstrap/internal/core/ports/mocks"
	"go.trai.ch/meowstrap/internal/engine/installer"
	"go.uber.org/mock/gomock"
)

const testKey = "RWR5G7Ii33vLdX3oxrrc7+8QhVivVZmtMrJU/JsFRmFXZBAVVBR70Ilr"

func newBinary(t *testing.T) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "meow")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755))
	return binary
}

func newApp(t *testing.T, loader *mocks.MockManifestLoader, mfs *memfs.FS) *app.App {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Success(gomock.Any()).AnyTimes()

	inst := installer.New(
		mfs,
		meow.NewManager(newBinary(t), mfs),
		meow.NewEncoder(),
		fs.NewHasher(),
		telemetry.New(),
		log,
	)
	inst.SetOutput(io.Discard, io.Discard)
	return app.New(loader, inst, log)
}

func TestApp_Run_UnsafeRoot(t *testing.T) {
	for _, input := range []string{"/", "/etc", "/usr/../", "//"} {
		t.Run(input, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := mocks.NewMockManifestLoader(ctrl)
			mfs := memfs.New()

			report, err := newApp(t, loader, mfs).Run(context.Background(), input, app.RunOptions{Reset: true})
			require.Error(t, err)

			assert.ErrorIs(t, err, domain.ErrUnsafeRoot)
			assert.Nil(t, report)
			assert.Empty(t, mfs.Calls())
			assert.NotEqual(t, 0, domain.ExitCode(err))
		})
	}
}

func TestApp_Run_Bootstrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockManifestLoader(ctrl)
	loader.EXPECT().Load("").Return(&domain.Manifest{
		Index:    "https://tilde.club/~aspizu/",
		Keys:     []string{testKey},
		Packages: "a b  b c",
	}, nil)
	mfs := memfs.New()

	report, err := newApp(t, loader, mfs).Run(context.Background(), "/mnt/newsys", app.RunOptions{})
	require.NoError(t, err)

	config, ok := mfs.ReadFile(report.Root.ConfigPath())
	require.True(t, ok)

	doc, err := meow.Decode(config.Data)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "b", "c"}, doc.Packages)
	assert.Equal(t, []string{testKey}, doc.Keys)

	binary, ok := mfs.ReadFile(report.Root.BinaryPath())
	require.True(t, ok)
	assert.Equal(t, domain.BinaryMode, binary.Mode)
	assert.False(t, mfs.Exists(report.Root.TempDir()))
}

func TestApp_Run_Overrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockManifestLoader(ctrl)
	loader.EXPECT().Load("/srv/manifest.yaml").Return(&domain.Manifest{
		Index:    "https://tilde.club/~aspizu/",
		Keys:     []string{testKey},
		Packages: "busybox",
	}, nil)
	mfs := memfs.New()

	report, err := newApp(t, loader, mfs).Run(context.Background(), "/mnt/newsys", app.RunOptions{
		Manifest: "/srv/manifest.yaml",
		Index:    "https://mirror.example/meow/",
		Keys:     []string{"other-key"},
	})
	require.NoError(t, err)

	config, _ := mfs.ReadFile(report.Root.ConfigPath())
	doc, err := meow.Decode(config.Data)
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example/meow/", doc.Index)
	assert.Equal(t, []string{"other-key"}, doc.Keys)
	assert.Equal(t, []string{"busybox"}, doc.Packages)
}

func TestApp_Run_ManifestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockManifestLoader(ctrl)
	loader.EXPECT().Load("missing.yaml").Return(nil, errors.Join(domain.ErrManifestReadFailed, os.ErrNotExist))
	mfs := memfs.New()

	_, err := newApp(t, loader, mfs).Run(context.Background(), "/mnt/newsys", app.RunOptions{Manifest: "missing.yaml"})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrManifestReadFailed)
	assert.Empty(t, mfs.Calls())
}

func TestApp_Run_EmptyPackageList(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockManifestLoader(ctrl)
	loader.EXPECT().Load("").Return(&domain.Manifest{Index: "https://tilde.club/~aspizu/", Packages: " \n\t"}, nil)
	mfs := memfs.New()

	_, err := newApp(t, loader, mfs).Run(context.Background(), "/mnt/newsys", app.RunOptions{})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrEmptyPackageList)
	assert.Empty(t, mfs.Calls())
}
