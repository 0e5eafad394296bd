package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/vaultwright/plugin-install/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyGitBinary      = "git_binary"
	KeyLogLevel       = "log_level"
	KeyVaultConfigDir = "vault_config_dir"
)

// Dir returns the path to the config directory (~/.plugin-install/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.plugin-install/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is ignored; a present but unreadable one is reported.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyGitBinary, "git")
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyVaultConfigDir, branding.ConfigDir())

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GitBinary returns the git executable used for the preflight check and clone.
func GitBinary() string { return Get(KeyGitBinary) }

// LogLevel returns the diagnostic log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// VaultConfigDir returns the name of the vault's configuration folder.
func VaultConfigDir() string { return Get(KeyVaultConfigDir) }
