package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
samples: 5000
seed: 7
workers: 4
out_dir: plots
colors:
  radial: "#112233"
log:
  level: debug
  format: json
`

const testJSON = `{"samples": "200", "log": {"file": "run.log"}}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New("settings.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)

	_, err = New(writeFile(t, "bad.json", "{not json"))
	assert.ErrorIs(t, err, ErrParseFailed)

	_, err = NewFromBytes(nil, Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew_YAML(t *testing.T) {
	path := writeFile(t, "bertrand.yml", testYAML)
	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, FormatYAML, cfg.Format())
	assert.Equal(t, 5000, cfg.Client().Int("samples"))

	var log LogSettings
	require.NoError(t, cfg.Unmarshal("log", &log))
	assert.Equal(t, "debug", log.Level)
	assert.Equal(t, "json", log.Format)
}

func TestNewFromBytes_EmptyAndOptions(t *testing.T) {
	cfg, err := NewFromBytes(nil, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Empty(t, cfg.Client().Keys())

	cfg, err = NewFromBytes([]byte(`{"a": {"b": 1}}`), FormatJSON, WithDelim("/"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Client().Int("a/b"))

	type custom struct {
		B int `json:"b"`
	}
	var c custom
	cfg, err = NewFromBytes([]byte(`{"a": {"b": 2}}`), FormatJSON, WithTag("json"))
	require.NoError(t, err)
	require.NoError(t, cfg.Unmarshal("a", &c))
	assert.Equal(t, 2, c.B)
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"workers": "many"}`), FormatJSON)
	require.NoError(t, err)
	var s Settings
	assert.ErrorIs(t, cfg.Unmarshal("", &s), ErrUnmarshalFailed)
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings("")
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
		assert.NoError(t, s.Validate())
	})

	t.Run("yaml_overrides", func(t *testing.T) {
		s, err := LoadSettings(writeFile(t, "b.yaml", testYAML))
		require.NoError(t, err)
		assert.Equal(t, 5000, s.Samples)
		assert.Equal(t, int64(7), s.Seed)
		assert.Equal(t, 4, s.Workers)
		assert.Equal(t, "plots", s.OutDir)
		assert.Equal(t, DefaultCircle, s.Circle, "missing keys keep defaults")
		assert.Equal(t, "#112233", s.Colors["radial"])
		assert.Equal(t, "debug", s.Log.Level)
	})

	t.Run("json_weak_types", func(t *testing.T) {
		s, err := LoadSettings(writeFile(t, "b.json", testJSON))
		require.NoError(t, err)
		assert.Equal(t, 200, s.Samples)
		assert.Equal(t, "run.log", s.Log.File)
		assert.Equal(t, "text", s.Log.Format)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := LoadSettings(writeFile(t, "b.yaml", "circle: 2\n"))
		assert.ErrorIs(t, err, ErrInvalidSettings)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrLoadFailed)
	})
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"negative_samples", func(s *Settings) { s.Samples = -1 }},
		{"negative_workers", func(s *Settings) { s.Workers = -2 }},
		{"empty_out", func(s *Settings) { s.OutDir = "  " }},
		{"small_circle", func(s *Settings) { s.Circle = 2 }},
		{"log_format", func(s *Settings) { s.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSettings)
		})
	}
}
