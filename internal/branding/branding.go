// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool or retarget another
// vault layout without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	HostApp     string `yaml:"host_app"`
	ConfigDir   string `yaml:"config_dir"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "plugin-install",
			Description: "Install Obsidian community plugins from a git repository",
			HomeDir:     ".plugin-install",
			EnvPrefix:   "PLUGIN_INSTALL",
			HostApp:     "Obsidian",
			ConfigDir:   ".obsidian",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "plugin-install").
func CLIName() string { load(); return defaults.CLIName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".plugin-install").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PLUGIN_INSTALL").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// HostApp returns the name of the application plugins are installed into.
func HostApp() string { load(); return defaults.HostApp }

// ConfigDir returns the default vault configuration folder (e.g., ".obsidian").
func ConfigDir() string { load(); return defaults.ConfigDir }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LOG_LEVEL") → "PLUGIN_INSTALL_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
