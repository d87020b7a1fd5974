// Package config provides application configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Brydon13/vaultguard/internal/generator"
	"github.com/Brydon13/vaultguard/internal/logging"
	"github.com/Brydon13/vaultguard/internal/store"
)

// EnvPrefix is the prefix for environment overrides, e.g. VAULTGUARD_STORAGE_DRIVER.
const EnvPrefix = "VAULTGUARD"

// Config holds all application configuration.
type Config struct {
	User      string
	Storage   StorageConfig
	Log       LogConfig
	Generator GeneratorConfig
	Login     LoginConfig
}

// StorageConfig selects the vault record backend.
type StorageConfig struct {
	Driver string
	Dir    string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// GeneratorConfig holds password generator settings.
type GeneratorConfig struct {
	Length int
}

// LoginConfig throttles interactive login attempts.
type LoginConfig struct {
	Rate  float64
	Burst int
}

// DefaultHome returns ~/.vaultguard, or .vaultguard if the home directory
// cannot be determined.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vaultguard"
	}
	return filepath.Join(home, ".vaultguard")
}

// SetDefaults configures default values.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("user", "")
	v.SetDefault("storage.driver", store.DriverFile)
	v.SetDefault("storage.dir", filepath.Join(DefaultHome(), "vaults"))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("generator.length", generator.DefaultLength)
	v.SetDefault("login.rate", 0.5)
	v.SetDefault("login.burst", 3)
}

// Load reads configuration from v, which the caller has already pointed at
// config files, env and flags.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		User: v.GetString("user"),
		Storage: StorageConfig{
			Driver: v.GetString("storage.driver"),
			Dir:    v.GetString("storage.dir"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Generator: GeneratorConfig{
			Length: v.GetInt("generator.length"),
		},
		Login: LoginConfig{
			Rate:  v.GetFloat64("login.rate"),
			Burst: v.GetInt("login.burst"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case store.DriverFile, store.DriverBolt:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", store.DriverFile, store.DriverBolt, c.Storage.Driver)
	}

	if c.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Generator.Length < generator.MinLength {
		return fmt.Errorf("generator.length must be at least %d", generator.MinLength)
	}

	if c.Login.Rate <= 0 || c.Login.Burst < 1 {
		return fmt.Errorf("login.rate must be positive and login.burst at least 1")
	}

	return nil
}
