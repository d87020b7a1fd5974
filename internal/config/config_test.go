package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(DefaultHome(), "vaults"), cfg.Storage.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 16, cfg.Generator.Length)
	assert.Equal(t, 3, cfg.Login.Burst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VAULTGUARD_STORAGE_DRIVER", "bolt")
	t.Setenv("VAULTGUARD_GENERATOR_LENGTH", "24")
	t.Setenv("VAULTGUARD_USER", "alice_01")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, 24, cfg.Generator.Length)
	assert.Equal(t, "alice_01", cfg.User)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "storage:\n  driver: bolt\n  dir: /tmp/vg\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := newViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/vg", cfg.Storage.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage:   StorageConfig{Driver: "file", Dir: "/tmp/vg"},
			Log:       LogConfig{Level: "info", Format: "text"},
			Generator: GeneratorConfig{Length: 16},
			Login:     LoginConfig{Rate: 1, Burst: 3},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "redis" }},
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"short generator", func(c *Config) { c.Generator.Length = 3 }},
		{"zero rate", func(c *Config) { c.Login.Rate = 0 }},
		{"zero burst", func(c *Config) { c.Login.Burst = 0 }},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
