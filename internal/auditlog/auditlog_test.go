package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	e := Entry{
		Timestamp: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		User:      "admin",
		Action:    "import",
		Details:   "3 rows from jan.csv",
	}

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalBadTimestamp(t *testing.T) {
	_, err := UnmarshalEntry([]string{"yesterday", "admin", "import", ""})
	assert.Error(t, err)
}

func TestUnmarshalWrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"2024-03-01T09:30:00Z", "admin"})
	assert.Error(t, err)
}

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()
	first := Entry{
		Timestamp: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		User:      "admin",
		Action:    "init",
		Details:   "project created",
	}
	second := Entry{
		Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		User:      "analyst",
		Action:    "export",
		Details:   "exports/sales.xlsx",
	}

	require.NoError(t, Append(root, []Entry{first}))
	require.NoError(t, Append(root, []Entry{second}))

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])

	data, err := os.ReadFile(filepath.Join(root, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header+"\n"), "header written exactly once")
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDetailsWithCommas(t *testing.T) {
	root := t.TempDir()
	e := Entry{
		Timestamp: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		User:      "admin",
		Action:    "import",
		Details:   "5 added, 2 dropped",
	}
	require.NoError(t, Append(root, []Entry{e}))

	entries, err := Read(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "5 added, 2 dropped", entries[0].Details)
}
