// Package installer implements the plugin installation workflow: check that
// git is present, clone the plugin repository, validate its manifest, and
// copy the plugin files into the vault's plugin directory.
//
// The workflow is a straight pipeline that stops at the first failure. Every
// failure is returned as an *Error carrying a Kind, so callers can report it
// and exit without inspecting message text. Nothing is retried and a copy
// that fails midway is not rolled back.
//
// git, the filesystem, and the overwrite prompt are injected through the VCS,
// FileSystem, and Confirmer interfaces.
package installer
