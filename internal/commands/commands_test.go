package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesview-dev/salesview/internal/auditlog"
	"github.com/salesview-dev/salesview/internal/config"
)

func TestRunInitScaffolding(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Corner Grocery", false))

	for _, d := range []string{"import", "import/processed", "exports", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir(), d)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Corner Grocery", cfg.Store.Name)
	assert.False(t, cfg.Git.AutoCommit)

	data, err := os.ReadFile(filepath.Join(dir, "sales_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Date,Branch,Product,Quantity,UnitPrice,Total\n", string(data))

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "init", entries[0].Action)
	assert.Equal(t, "system", entries[0].User)
}

func TestRunInitPreservesExistingData(t *testing.T) {
	dir := t.TempDir()
	body := "Date,Branch,Product,Quantity,UnitPrice,Total\n2024-01-15,Colombo,Milk,2,50,100\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sales_data.csv"), []byte(body), 0o644))

	require.NoError(t, runInit(dir, "Corner Grocery", false))

	data, err := os.ReadFile(filepath.Join(dir, "sales_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, body, string(data), "existing backing file is left alone")
}

func TestOpenProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Corner Grocery", false))

	p, err := openProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "Corner Grocery", p.cfg.Store.Name)
	assert.True(t, p.led.IsEmpty())
}

func TestOpenProjectWithoutConfig(t *testing.T) {
	_, err := openProject(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a salesview project")
}

func TestParseMonth(t *testing.T) {
	m, err := parseMonth("")
	require.NoError(t, err)
	assert.Equal(t, time.Month(0), m)

	m, err = parseMonth("3")
	require.NoError(t, err)
	assert.Equal(t, time.March, m)

	m, err = parseMonth("january")
	require.NoError(t, err)
	assert.Equal(t, time.January, m)

	m, err = parseMonth("December")
	require.NoError(t, err)
	assert.Equal(t, time.December, m)

	_, err = parseMonth("13")
	assert.Error(t, err)
	_, err = parseMonth("Jannuary")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange("2024-01-01", "2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), to)

	from, to, err = parseRange("", "")
	require.NoError(t, err)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())

	_, _, err = parseRange("2024-01-07", "2024-01-01")
	assert.Error(t, err, "reversed range is rejected")

	_, _, err = parseRange("next tuesday", "")
	assert.Error(t, err)
}
