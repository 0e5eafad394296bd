package vault

import (
	"path/filepath"

	"github.com/vaultwright/plugin-install/internal/branding"
)

// PluginsDir is the plugin-storage folder inside the vault configuration folder.
const PluginsDir = "plugins"

// Layout resolves paths inside one vault.
type Layout struct {
	Root      string
	ConfigDir string
}

// NewLayout returns the layout for the vault at root. An empty configDir
// selects the default configuration folder (e.g., ".obsidian").
func NewLayout(root, configDir string) Layout {
	if configDir == "" {
		configDir = branding.ConfigDir()
	}
	return Layout{Root: root, ConfigDir: configDir}
}

// PluginsRoot returns <root>/<configDir>/plugins.
func (l Layout) PluginsRoot() string {
	return filepath.Join(l.Root, l.ConfigDir, PluginsDir)
}

// PluginDir returns the install directory for a plugin identifier.
func (l Layout) PluginDir(pluginID string) string {
	return filepath.Join(l.PluginsRoot(), pluginID)
}
