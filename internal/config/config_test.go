package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/derp-numeric/numeric"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", map[string]string{})
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, uint32(DefaultMaxInputBytes), cfg.MaxInputBytes.Uint32())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
format = "yaml"
log_level = "debug"
log_format = "json"
max_input_bytes = 128
`)

	cfg, err := Load(path, map[string]string{})
	require.NoError(t, err)
	require.Equal(t, Config{
		Format:        "yaml",
		LogLevel:      "debug",
		LogFormat:     "json",
		MaxInputBytes: numeric.MustNew(128),
	}, cfg)
}

func TestLoadFileStringLimit(t *testing.T) {
	path := writeConfig(t, `max_input_bytes = "256"`)

	cfg, err := Load(path, map[string]string{})
	require.NoError(t, err)
	require.Equal(t, numeric.MustNew(256), cfg.MaxInputBytes)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
format = "yaml"
max_input_bytes = 128
`)

	cfg, err := Load(path, map[string]string{
		"DERP_NUMERIC_FORMAT":          "toml",
		"DERP_NUMERIC_MAX_INPUT_BYTES": "64",
	})
	require.NoError(t, err)
	require.Equal(t, "toml", cfg.Format)
	require.Equal(t, numeric.MustNew(64), cfg.MaxInputBytes)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		desc    string
		file    string
		environ map[string]string
		err     string
	}{
		{desc: "zero limit in file", file: `max_input_bytes = 0`, err: "invalid integer value"},
		{desc: "zero limit in env", environ: map[string]string{"DERP_NUMERIC_MAX_INPUT_BYTES": "0"}, err: "invalid integer value"},
		{desc: "garbage limit in env", environ: map[string]string{"DERP_NUMERIC_MAX_INPUT_BYTES": "lots"}, err: "failed to parse integer"},
		{desc: "bad format", file: `format = "xml"`, err: `config: unsupported format "xml"`},
		{desc: "bad log format", file: `log_format = "xml"`, err: `config: unsupported log_format "xml"`},
		{desc: "broken toml", file: `format = `, err: "config load failed"},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			path := ""
			if tc.file != "" {
				path = writeConfig(t, tc.file)
			}

			environ := tc.environ
			if environ == nil {
				environ = map[string]string{}
			}

			_, err := Load(path, environ)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), map[string]string{})
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.MaxInputBytes = numeric.Numeric{}
	require.EqualError(t, cfg.Validate(), "config: max_input_bytes must be set")
}
