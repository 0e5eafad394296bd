package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/vaultwright/plugin-install/internal/branding"
	"github.com/vaultwright/plugin-install/internal/manifest"
	"github.com/vaultwright/plugin-install/internal/source"
	"github.com/vaultwright/plugin-install/internal/vault"
)

// Files a plugin repository provides at its root.
const (
	EntryPointFile = "main.js"
	StylesheetFile = "styles.css"
)

var errClonePresent = errors.New("refusing to reuse an existing clone")

// VCS is the version-control client used to fetch plugin sources.
type VCS interface {
	Version(ctx context.Context) (string, error)
	Clone(ctx context.Context, url, dir string) error
}

// FileSystem is the set of filesystem operations the workflow performs.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	RemoveTree(path string) error
	MkdirAll(path string) error
	CopyFile(src, dst string) error
}

// Request names the plugin repository and the vault to install it into.
type Request struct {
	RepoURL   string
	VaultRoot string
}

// Result describes a completed installation.
type Result struct {
	Source   *source.Reference
	Manifest *manifest.Manifest
	// Dir is the plugin directory inside the vault. Its base name is always
	// the manifest id.
	Dir string
	// Files lists the copied file names in copy order.
	Files []string
	// Replaced is true when an existing plugin directory was removed first.
	Replaced bool
}

// Installer runs the installation workflow.
type Installer struct {
	VCS     VCS
	FS      FileSystem
	Confirm Confirmer

	// WorkDir is the directory the repository is cloned into.
	WorkDir string
	// VaultConfigDir overrides the vault configuration folder name.
	VaultConfigDir string

	// Out receives progress messages for the operator; nil discards them.
	Out io.Writer
	// Logger receives diagnostics; nil discards them.
	Logger *log.Logger
}

// Install clones req.RepoURL and installs the plugin into req.VaultRoot.
// It stops at the first failure and returns it as an *Error.
func (i *Installer) Install(ctx context.Context, req Request) (*Result, error) {
	out := i.out()
	logger := i.logger()

	version, err := i.VCS.Version(ctx)
	if err != nil {
		return nil, &Error{Kind: ToolingMissing, Err: err}
	}
	logger.Debug("git available", "version", version)

	ref, err := source.NewReference(req.RepoURL, i.WorkDir)
	if err != nil {
		return nil, &Error{Kind: InvalidSource, Err: err}
	}
	logger.Debug("resolved source", "url", ref.URL, "clone_dir", ref.CloneDir)

	if err := i.clone(ctx, out, ref); err != nil {
		return nil, err
	}

	m, err := i.readManifest(out, ref.CloneDir)
	if err != nil {
		return nil, err
	}

	layout := vault.NewLayout(req.VaultRoot, i.VaultConfigDir)
	if !i.FS.Exists(layout.PluginsRoot()) {
		return nil, &Error{Kind: TargetNotInitialized, Path: layout.PluginsRoot()}
	}
	dest := layout.PluginDir(m.ID)
	logger.Debug("resolved destination", "dir", dest)

	replaced, err := i.resolveConflict(out, dest)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Installing plugin to %s...\n", dest)
	files, err := i.copyFiles(ref.CloneDir, dest)
	if err != nil {
		logger.Warn("destination left partially written", "dir", dest, "copied", files)
		return nil, &Error{Kind: CopyFailed, Path: dest, Err: err}
	}

	fmt.Fprintf(out, "Plugin '%s' installed successfully.\n", m.Name)
	fmt.Fprintf(out, "To enable the plugin, go to Settings > Community plugins > Installed plugins in %s.\n", branding.HostApp())

	return &Result{
		Source:   ref,
		Manifest: m,
		Dir:      dest,
		Files:    files,
		Replaced: replaced,
	}, nil
}

// clone fetches the repository into a fresh clone directory. An existing
// directory is never reused or overwritten.
func (i *Installer) clone(ctx context.Context, out io.Writer, ref *source.Reference) error {
	if i.FS.Exists(ref.CloneDir) {
		return &Error{Kind: DestinationExists, Path: ref.CloneDir, Err: errClonePresent}
	}

	fmt.Fprintln(out, "Cloning repository...")
	if err := i.VCS.Clone(ctx, ref.URL, ref.CloneDir); err != nil {
		return &Error{Kind: CloneFailed, Path: ref.CloneDir, Err: err}
	}
	fmt.Fprintln(out, "Repository cloned successfully.")
	return nil
}

// readManifest checks that the required files exist in the clone and returns
// the parsed manifest.
func (i *Installer) readManifest(out io.Writer, cloneDir string) (*manifest.Manifest, error) {
	manifestPath := filepath.Join(cloneDir, manifest.FileName)
	for _, required := range []string{filepath.Join(cloneDir, EntryPointFile), manifestPath} {
		if !i.FS.Exists(required) {
			return nil, &Error{Kind: ClonedRepoIncomplete, Path: required}
		}
	}

	fmt.Fprintf(out, "Reading %s...\n", manifest.FileName)
	data, err := i.FS.ReadFile(manifestPath)
	if err != nil {
		return nil, &Error{Kind: ManifestMalformed, Path: manifestPath, Err: err}
	}

	m, err := manifest.Parse(data)
	if err != nil {
		kind := ManifestMalformed
		if errors.Is(err, manifest.ErrIncomplete) {
			kind = ManifestIncomplete
		}
		return nil, &Error{Kind: kind, Path: manifestPath, Err: err}
	}

	fmt.Fprintf(out, "Plugin ID: %s\n", m.ID)
	fmt.Fprintf(out, "Plugin Name: %s\n", m.Name)
	return m, nil
}

// resolveConflict asks before replacing an existing plugin directory. It
// reports whether the directory was removed.
func (i *Installer) resolveConflict(out io.Writer, dest string) (bool, error) {
	if !i.FS.Exists(dest) {
		return false, nil
	}

	confirm := i.Confirm
	if confirm == nil {
		// Without a way to ask, an existing plugin is never replaced.
		confirm = ConfirmFunc(func(string) (bool, error) { return false, nil })
	}

	question := fmt.Sprintf("Plugin directory %s already exists. Overwrite? (y/n): ", dest)
	ok, err := confirm.Confirm(question)
	if err != nil {
		return false, &Error{Kind: InstallationAborted, Path: dest, Err: err}
	}
	if !ok {
		fmt.Fprintln(out, "Aborting installation.")
		return false, &Error{Kind: InstallationAborted, Path: dest}
	}

	i.logger().Info("removing existing plugin directory", "dir", dest)
	if err := i.FS.RemoveTree(dest); err != nil {
		return false, &Error{Kind: CopyFailed, Path: dest, Err: err}
	}
	return true, nil
}

// copyFiles copies the entry point, the manifest, and the stylesheet when
// present. On failure it returns the names copied so far.
func (i *Installer) copyFiles(srcDir, dest string) ([]string, error) {
	if err := i.FS.MkdirAll(dest); err != nil {
		return nil, err
	}

	names := []string{EntryPointFile, manifest.FileName}
	if i.FS.Exists(filepath.Join(srcDir, StylesheetFile)) {
		names = append(names, StylesheetFile)
	}

	copied := make([]string, 0, len(names))
	for _, name := range names {
		if err := i.FS.CopyFile(filepath.Join(srcDir, name), filepath.Join(dest, name)); err != nil {
			return copied, err
		}
		copied = append(copied, name)
	}
	return copied, nil
}

func (i *Installer) out() io.Writer {
	if i.Out == nil {
		return io.Discard
	}
	return i.Out
}

func (i *Installer) logger() *log.Logger {
	if i.Logger == nil {
		return log.New(io.Discard)
	}
	return i.Logger
}
