package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default("Quân")
	cfg.Export.Formats = []string{"csv", "json"}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefault(t *testing.T) {
	cfg := Default("Quân")
	assert.Equal(t, "Quân", cfg.Person)
	assert.Equal(t, "0.5", cfg.SplitRatio)
	assert.Equal(t, "transactions", cfg.TransactionsDir)
	assert.Equal(t, "exports", cfg.Export.OutDir)

	ratio, err := cfg.Ratio()
	require.NoError(t, err)
	assert.Equal(t, "0.5", ratio.String())
}

func TestRatioInvalid(t *testing.T) {
	cfg := &Config{SplitRatio: "half"}
	_, err := cfg.Ratio()
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("person: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
