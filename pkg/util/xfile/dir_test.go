package xfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "a", "b", "c.png")

	require.NoError(t, EnsureDir(file))
	info, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// 已存在时不报错
	require.NoError(t, EnsureDir(file))

	// 无目录部分
	require.NoError(t, EnsureDir("c.png"))
}

func TestEnsureDirWithPerm_Errors(t *testing.T) {
	assert.ErrorIs(t, EnsureDirWithPerm("", 0750), ErrEmptyPath)
	assert.ErrorIs(t, EnsureDirWithPerm("a\x00/b", 0750), ErrNullByte)
	assert.ErrorIs(t, EnsureDirWithPerm("a/b", 0640), ErrInvalidPerm)
}

func TestEnsureDir_BlockedByFile(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureDir(filepath.Join(blocker, "sub", "x.png"))
	assert.ErrorIs(t, err, ErrCreateDir)
}

func TestOutputPath(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")

	path, err := OutputPath(base, "endpoints-chords.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "endpoints-chords.png"), path)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = OutputPath(base, "../x.png")
	assert.ErrorIs(t, err, ErrPathTraversal)
}
