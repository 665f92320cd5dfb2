package xrotate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xviz/pkg/util/xfile"
)

func TestNewLumberjack_Validation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.log")
	tests := []struct {
		name string
		file string
		opts []Option
		want error
	}{
		{"empty", "", nil, ErrEmptyFilename},
		{"size_zero", file, []Option{WithMaxSize(0)}, ErrInvalidMaxSize},
		{"size_big", file, []Option{WithMaxSize(maxSizeMB + 1)}, ErrInvalidMaxSize},
		{"backups_negative", file, []Option{WithMaxBackups(-1)}, ErrInvalidMaxBackups},
		{"age_big", file, []Option{WithMaxAge(maxAgeDays + 1)}, ErrInvalidMaxAge},
		{"traversal", "../x.log", nil, xfile.ErrPathTraversal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLumberjack(tt.file, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLumberjack_WriteRotateClose(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	file := filepath.Join(dir, "bertrand.log")

	r, err := NewLumberjack(file,
		WithMaxSize(1),
		WithMaxBackups(2),
		WithMaxAge(1),
		WithCompress(false),
		WithLocalTime(true),
	)
	require.NoError(t, err)

	n, err := r.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	require.NoError(t, r.Rotate())
	_, err = r.Write([]byte("after\n"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(entries), 2, "rotate should leave a backup file")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "after\n", string(data))

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Close(), ErrClosed)

	_, err = r.Write([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.Rotate(), ErrClosed)
}
