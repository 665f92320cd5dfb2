package xfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"absolute", "/var/log/xviz.log", "/var/log/xviz.log", nil},
		{"relative", "logs/xviz.log", "logs/xviz.log", nil},
		{"normalize", "/var/./log/../log/xviz.log", "/var/log/xviz.log", nil},
		{"double_dot_in_name", "out/app..2024.log", "out/app..2024.log", nil},
		{"empty", "", "", ErrEmptyPath},
		{"null_byte", "a\x00b", "", ErrNullByte},
		{"dir_slash", "logs/", "", ErrInvalidPath},
		{"dir_backslash", "logs\\", "", ErrInvalidPath},
		{"traversal", "../../etc/passwd", "", ErrPathTraversal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSafeJoin(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		name    string
		base    string
		path    string
		want    string
		wantErr error
	}{
		{"simple", base, "radial-chords.png", filepath.Join(base, "radial-chords.png"), nil},
		{"nested", base, "a/b.png", filepath.Join(base, "a", "b.png"), nil},
		{"dot_prefix", base, "..config", filepath.Join(base, "..config"), nil},
		{"empty_base", "", "x.png", "", ErrEmptyPath},
		{"null_base", "a\x00", "x.png", "", ErrNullByte},
		{"empty_path", base, "", "", ErrEmptyPath},
		{"null_path", base, "x\x00.png", "", ErrNullByte},
		{"absolute_path", base, "/etc/passwd", "", ErrInvalidPath},
		{"traversal", base, "../x.png", "", ErrPathTraversal},
		{"inner_traversal", base, "a/../../x.png", "", ErrPathTraversal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeJoin(tt.base, tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSafeJoin_RelativeBase(t *testing.T) {
	got, err := SafeJoin("out", "x.png")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "x.png", filepath.Base(got))
	assert.Equal(t, "out", filepath.Base(filepath.Dir(got)))
}
