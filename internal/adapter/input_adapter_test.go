package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

func writeInput(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestLocalInputAdapter_ReadLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"plain", "467..\n...*.\n", []string{"467..", "...*."}},
		{"no trailing newline", "ab\ncd", []string{"ab", "cd"}},
		{"crlf", "ab\r\ncd\r\n", []string{"ab", "cd"}},
		{"trailing blank lines", "ab\ncd\n\n\n", []string{"ab", "cd"}},
		{"inner blank line kept", "ab\n\ncd\n", []string{"ab", "", "cd"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewLocalInputAdapter()

			got, err := adapter.ReadLines(context.Background(), writeInput(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalInputAdapter_LongLine(t *testing.T) {
	line := strings.Repeat(".", 100_000)

	got, err := NewLocalInputAdapter().ReadLines(context.Background(), writeInput(t, line+"\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 100_000)
}

func TestLocalInputAdapter_MissingFile(t *testing.T) {
	_, err := NewLocalInputAdapter().ReadLines(context.Background(), m.Path(filepath.Join(t.TempDir(), "nope.txt")))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalInputAdapter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalInputAdapter().ReadLines(ctx, writeInput(t, "ab\n"))
	require.ErrorIs(t, err, context.Canceled)
}
