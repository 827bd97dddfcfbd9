package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/meowstrap/internal/core/domain"
)

const testIndex = "https://tilde.club/~aspizu/"

func TestBuildConfig(t *testing.T) {
	cfg, err := domain.BuildConfig(testIndex, "\n  a b  b\tc\n", []string{" k1 ", "", "k2"})
	require.NoError(t, err)

	assert.Equal(t, testIndex, cfg.Index)
	assert.Equal(t, []string{"a", "b", "b", "c"}, cfg.Packages)
	assert.Equal(t, []string{"k1", "k2"}, cfg.Keys)
}

func TestBuildConfig_NoKeys(t *testing.T) {
	cfg, err := domain.BuildConfig(testIndex, "bash", []string{"  "})
	require.NoError(t, err)
	assert.Nil(t, cfg.Keys)
}

func TestBuildConfig_EmptyPackageList(t *testing.T) {
	for _, curated := range []string{"", "   ", "\n\t\n"} {
		_, err := domain.BuildConfig(testIndex, curated, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyPackageList)
	}
}

func TestBuildConfig_MissingIndex(t *testing.T) {
	_, err := domain.BuildConfig(" ", "bash", nil)
	assert.ErrorIs(t, err, domain.ErrMissingIndex)
}

func TestTokenize(t *testing.T) {
	assert.Nil(t, domain.Tokenize(" \n "))
	assert.Equal(t, []string{"zlib", "acl", "zlib"}, domain.Tokenize("zlib acl\nzlib"))
}

func TestManifest_Override(t *testing.T) {
	base := domain.Manifest{Index: testIndex, Keys: []string{"base"}, Packages: "bash"}

	same := base.Override("  ", nil)
	assert.Equal(t, base, same)

	changed := base.Override("https://example.org/", []string{"other"})
	assert.Equal(t, "https://example.org/", changed.Index)
	assert.Equal(t, []string{"other"}, changed.Keys)
	assert.Equal(t, testIndex, base.Index, "override must not mutate the receiver")

	cfg, err := changed.Config()
	require.NoError(t, err)
	assert.Equal(t, []string{"bash"}, cfg.Packages)
}
