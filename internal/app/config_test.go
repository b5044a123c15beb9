package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEnsureConfigFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	created, err := EnsureConfigFile(path)
	require.NoError(t, err)
	assert.True(t, created)

	var fc fileConfig
	_, err = toml.DecodeFile(path, &fc)
	require.NoError(t, err)
	assert.False(t, fc.Simulated)
	assert.Equal(t, "en", fc.UI.Locale)
	assert.Equal(t, "info", fc.Logging.Level)

	created, err = EnsureConfigFile(path)
	require.NoError(t, err)
	assert.False(t, created, "existing file is left alone")
}

func TestEnsureConfigFileKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "simulated = true\n")

	created, err := EnsureConfigFile(path)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "simulated = true\n", string(data))
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	_, err := EnsureConfigFile(path)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.False(t, cfg.Simulated)
	assert.Equal(t, "", cfg.Context)
	assert.Empty(t, cfg.Clusters)
	assert.Empty(t, cfg.Users)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/tmp/clust.log", cfg.LogFile)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `simulated = true

[cluster]
kubeconfig = "/etc/kube/config"
context = "staging"
clusters = ["staging-eu", "staging-us"]
users = ["ops"]

[cache]
ttl = "5s"

[ui]
locale = "zh"

[logging]
level = "debug"
file = "/var/log/clust.log"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Simulated)
	assert.Equal(t, "/etc/kube/config", cfg.Kubeconfig)
	assert.Equal(t, "staging", cfg.Context)
	assert.Equal(t, []string{"staging-eu", "staging-us"}, cfg.Clusters)
	assert.Equal(t, []string{"ops"}, cfg.Users)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
	assert.Equal(t, "zh", cfg.Locale)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/log/clust.log", cfg.LogFile)

	meta := cfg.Metadata()
	assert.Equal(t, "staging", meta.DefaultContext)
	assert.Equal(t, []string{"staging-eu", "staging-us"}, meta.Clusters)
	assert.Equal(t, []string{"ops"}, meta.Users)
	assert.Empty(t, meta.Contexts)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	writeFile(t, path, "simulated = false\n")
	t.Setenv("CLUST_SIMULATED", "true")
	t.Setenv("CLUST_UI_LOCALE", "zh")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Simulated)
	assert.Equal(t, "zh", cfg.Locale)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.toml")
	writeFile(t, invalid, "simulated = = true\n")

	tests := []struct {
		name string
		path string
	}{
		{"invalid toml", invalid},
		{"missing explicit file", filepath.Join(dir, "missing.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(tt.path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.File)
	assert.False(t, cfg.Simulated)
	assert.FileExists(t, cfg.File)
}
