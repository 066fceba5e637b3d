package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := &Config{
		Store: Store{Name: "Corner Grocery", Currency: "Rs."},
		Data:  Data{File: "sales_data.csv"},
		Users: map[string]string{"admin": "admin123"},
		Git:   Git{AutoCommit: true, AuthorName: "Salesview", AuthorEmail: "salesview@localhost"},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoadDefaultsDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	body := "store:\n  name: Corner Grocery\n  currency: Rs.\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sales_data.csv", cfg.Data.File)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Corner Grocery")

	assert.Equal(t, "Corner Grocery", cfg.Store.Name)
	assert.Equal(t, "Rs.", cfg.Store.Currency)
	assert.Equal(t, "sales_data.csv", cfg.Data.File)
	assert.Equal(t, "admin123", cfg.Users["admin"])
	assert.Equal(t, "analyst123", cfg.Users["analyst"])
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Salesview", cfg.Git.AuthorName)
}
