package meow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/meowstrap/internal/adapters/meow"
	"go.trai.ch/meowstrap/internal/core/domain"
)

func TestEncoder_Encode(t *testing.T) {
	cfg, err := domain.BuildConfig("https://tilde.club/~aspizu/", "a b  b c", []string{"RWR5G7Ii33vLdX3oxrrc7+8QhVivVZmtMrJU/JsFRmFXZBAVVBR70Ilr"})
	require.NoError(t, err)

	data, err := meow.NewEncoder().Encode(cfg)
	require.NoError(t, err)

	want := `index = "https://tilde.club/~aspizu/"
packages = ["a", "b", "b", "c"]
keys = ["RWR5G7Ii33vLdX3oxrrc7+8QhVivVZmtMrJU/JsFRmFXZBAVVBR70Ilr"]
`
	assert.Equal(t, want, string(data))
}

func TestEncoder_Encode_NoKeys(t *testing.T) {
	data, err := meow.NewEncoder().Encode(domain.BootstrapConfig{
		Index:    "https://example.org/",
		Packages: []string{"bash"},
	})
	require.NoError(t, err)

	assert.Equal(t, "index = \"https://example.org/\"\npackages = [\"bash\"]\n", string(data))
}

func TestEncoder_Encode_Deterministic(t *testing.T) {
	encoder := meow.NewEncoder()
	curated := "zlib acl attr\nbash  coreutils zlib"

	cfg1, err := domain.BuildConfig("https://example.org/", curated, []string{"k"})
	require.NoError(t, err)
	cfg2, err := domain.BuildConfig("https://example.org/", curated, []string{"k"})
	require.NoError(t, err)

	first, err := encoder.Encode(cfg1)
	require.NoError(t, err)
	second, err := encoder.Encode(cfg2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEncoder_Encode_Empty(t *testing.T) {
	_, err := meow.NewEncoder().Encode(domain.BootstrapConfig{Index: "https://example.org/"})
	assert.ErrorIs(t, err, domain.ErrEmptyPackageList)
}

func TestDecode(t *testing.T) {
	cfg := domain.BootstrapConfig{
		Index:    "https://example.org/",
		Packages: []string{"a", "b", "b", "c"},
		Keys:     []string{"k"},
	}
	data, err := meow.NewEncoder().Encode(cfg)
	require.NoError(t, err)

	doc, err := meow.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, meow.Document{Index: cfg.Index, Packages: cfg.Packages, Keys: cfg.Keys}, doc)

	_, err = meow.Decode([]byte("index = ["))
	assert.Error(t, err)
}
