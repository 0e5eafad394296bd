package vault

import (
	"path/filepath"
	"testing"
)

func TestLayoutDefaults(t *testing.T) {
	l := NewLayout("/vault", "")
	if got, want := l.PluginsRoot(), filepath.Join("/vault", ".obsidian", "plugins"); got != want {
		t.Errorf("PluginsRoot() = %q, want %q", got, want)
	}
	if got, want := l.PluginDir("sample-plugin-id"), filepath.Join("/vault", ".obsidian", "plugins", "sample-plugin-id"); got != want {
		t.Errorf("PluginDir() = %q, want %q", got, want)
	}
}

func TestLayoutCustomConfigDir(t *testing.T) {
	l := NewLayout("/notes", ".config-obsidian")
	if got, want := l.PluginsRoot(), filepath.Join("/notes", ".config-obsidian", "plugins"); got != want {
		t.Errorf("PluginsRoot() = %q, want %q", got, want)
	}
}
