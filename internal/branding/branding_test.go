package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "plugin-install" {
		t.Errorf("CLIName() = %q, want %q", got, "plugin-install")
	}
	if got := ConfigDir(); got != ".obsidian" {
		t.Errorf("ConfigDir() = %q, want %q", got, ".obsidian")
	}
	if got := HostApp(); got != "Obsidian" {
		t.Errorf("HostApp() = %q, want %q", got, "Obsidian")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "PLUGIN_INSTALL_LOG_LEVEL" {
		t.Errorf("EnvVar(log_level) = %q, want %q", got, "PLUGIN_INSTALL_LOG_LEVEL")
	}
}
