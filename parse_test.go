package csvkit

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type collected struct {
	indexes []int
	rows    [][]string
}

func collect(row int, columns []string, userData any) {
	c := userData.(*collected)
	c.indexes = append(c.indexes, row)
	c.rows = append(c.rows, columns)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "name, code\n\"Bermuda\", BM\n\"United States\", \"US\"\n")

	var got collected
	cfg := DefaultConfig()
	cfg.TrimSpace = true
	cfg.RowHandler = collect
	cfg.UserData = &got

	require.NoError(t, ParseFile(path, cfg))
	assert.Equal(t, []int{0, 1, 2}, got.indexes)

	want := [][]string{
		{"name", "code"},
		{"Bermuda", "BM"},
		{"United States", "US"},
	}
	if diff := cmp.Diff(want, got.rows); diff != "" {
		t.Fatalf("ParseFile rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFileStopsAtFirstBadLine(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	path := writeTemp(t, "ok,1\n\"broken,2\nnever,3\n")

	var got collected
	cfg := DefaultConfig()
	cfg.RowHandler = collect
	cfg.UserData = &got
	cfg.Logger = zap.New(core)

	err := ParseFile(path, cfg)
	require.ErrorIs(t, err, ErrUnbalancedQuotes)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, [][]string{{"ok", "1"}}, got.rows)

	entries := logs.FilterMessage("failed to parse csv line").All()
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].ContextMap()["path"])
}

func TestParseFileInputErrors(t *testing.T) {
	t.Parallel()

	handler := func(int, []string, any) {}

	cfg := DefaultConfig()
	assert.ErrorIs(t, ParseFile("data.csv", cfg), ErrNilInput)

	cfg.RowHandler = handler
	assert.ErrorIs(t, ParseFile("", cfg), ErrNilInput)

	missing := filepath.Join(t.TempDir(), "missing.csv")
	err := ParseFile(missing, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	var rows [][]string
	cfg := Config{
		Delimiter: '|',
		RowHandler: func(_ int, columns []string, _ any) {
			rows = append(rows, columns)
		},
	}

	require.NoError(t, ParseReader(strings.NewReader("a|b\r\nc|d"), cfg))
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)

	assert.ErrorIs(t, ParseReader(nil, cfg), ErrNilInput)
}

func TestParseReaderEmptyInput(t *testing.T) {
	t.Parallel()

	calls := 0
	cfg := DefaultConfig()
	cfg.RowHandler = func(int, []string, any) { calls++ }

	require.NoError(t, ParseReader(strings.NewReader(""), cfg))
	assert.Zero(t, calls)
}
