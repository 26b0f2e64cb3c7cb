package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points HOME at a temp dir and clears PROMPTKIT_* overrides
// so tests never see the developer's real config.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PROMPTKIT_MODEL", "")
	t.Setenv("PROMPTKIT_CATALOG", "")
	t.Setenv("PROMPTKIT_NO_COLOR", "")
	return home
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "promptkit")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 4.0, cfg.CharsPerToken)
	assert.Equal(t, "claude-sonnet-4", cfg.DefaultModel)
	assert.Equal(t, 0.1, cfg.Margin)
	assert.Equal(t, 10.0, cfg.OverlapPercent)
	assert.Empty(t, cfg.Catalog)
	assert.False(t, cfg.NoColor)

	assert.NoError(t, cfg.Validate())
}

func TestPath(t *testing.T) {
	home := isolateEnv(t)

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "promptkit", "config.toml"), path)
}

func TestLoad_MissingFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, `
chars_per_token = 3.5
default_model = "gpt-4o"
overlap_percent = 25.0
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3.5, cfg.CharsPerToken)
	assert.Equal(t, "gpt-4o", cfg.DefaultModel)
	assert.Equal(t, 25.0, cfg.OverlapPercent)
	// Unset keys keep their defaults.
	assert.Equal(t, 0.1, cfg.Margin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, `default_model = "gpt-4o"`)

	t.Setenv("PROMPTKIT_MODEL", "claude-opus-4")
	t.Setenv("PROMPTKIT_CATALOG", "/tmp/models.yaml")
	t.Setenv("PROMPTKIT_NO_COLOR", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "claude-opus-4", cfg.DefaultModel)
	assert.Equal(t, "/tmp/models.yaml", cfg.Catalog)
	assert.True(t, cfg.NoColor)
}

func TestLoad_NoColorEnvFalseValues(t *testing.T) {
	isolateEnv(t)

	for _, v := range []string{"0", "false", "FALSE"} {
		t.Setenv("PROMPTKIT_NO_COLOR", v)
		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.NoColor, "value %q should not enable no_color", v)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, `chars_per_token = -1.0`)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chars_per_token")
}

func TestLoad_MalformedFile(t *testing.T) {
	home := isolateEnv(t)
	writeConfig(t, home, `chars_per_token = = nope`)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative margin",
			mutate:  func(c *Config) { c.Margin = -0.5 },
			wantKey: "margin",
		},
		{
			name:    "overlap percent above range",
			mutate:  func(c *Config) { c.OverlapPercent = 150 },
			wantKey: "overlap_percent",
		},
		{
			name:    "zero chars per token",
			mutate:  func(c *Config) { c.CharsPerToken = 0 },
			wantKey: "chars_per_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	isolateEnv(t)

	cfg := Default()
	cfg.DefaultModel = "gemini-2.5-pro"
	cfg.OverlapPercent = 20
	cfg.NoColor = true

	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
