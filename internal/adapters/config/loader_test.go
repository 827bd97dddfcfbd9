package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/meowstrap/internal/adapters/config"
	"go.trai.ch/meowstrap/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Base(t *testing.T) {
	manifest, err := config.NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://tilde.club/~aspizu/", manifest.Index)
	assert.Equal(t, []string{"RWR5G7Ii33vLdX3oxrrc7+8QhVivVZmtMrJU/JsFRmFXZBAVVBR70Ilr"}, manifest.Keys)

	cfg, err := manifest.Config()
	require.NoError(t, err)
	assert.Len(t, cfg.Packages, 82)
	assert.Equal(t, "configuration", cfg.Packages[0])
	assert.Equal(t, "xz", cfg.Packages[len(cfg.Packages)-1])
	assert.Contains(t, cfg.Packages, "glibc")
	assert.Contains(t, cfg.Packages, "kakoune")
}

func TestLoad_PackagesBlock(t *testing.T) {
	path := writeManifest(t, `
index: https://example.org/
packages: |
  a b  b
  c
`)

	manifest, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	cfg, err := manifest.Config()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "b", "c"}, cfg.Packages)
	assert.Nil(t, cfg.Keys)
}

func TestLoad_PackagesList(t *testing.T) {
	path := writeManifest(t, `
index: https://example.org/
keys: [k1, k2]
packages:
  - bash
  - coreutils
  - bash
`)

	manifest, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	cfg, err := manifest.Config()
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "coreutils", "bash"}, cfg.Packages)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Keys)
}

func TestLoad_InvalidPackages(t *testing.T) {
	path := writeManifest(t, `
index: https://example.org/
packages:
  bash: true
`)

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeManifest(t, "index: [unterminated\n")

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestReadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBase(t *testing.T) {
	assert.Equal(t, "https://tilde.club/~aspizu/", config.Base().Index)
}
