package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Git runs the git client as an external process.
type Git struct {
	// Binary is the git executable name or path. Defaults to "git".
	Binary string

	// Progress receives clone progress output; defaults to os.Stderr.
	Progress io.Writer
}

// NewGit returns a client for the given git executable.
func NewGit(binary string) *Git {
	if binary == "" {
		binary = "git"
	}
	return &Git{Binary: binary, Progress: os.Stderr}
}

// Version runs `git --version` and returns its trimmed output. It fails when
// the binary cannot be found or exits non-zero.
func (g *Git) Version(ctx context.Context) (string, error) {
	bin, err := exec.LookPath(g.binary())
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", g.binary(), err)
	}

	cmd := exec.CommandContext(ctx, bin, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s --version: %w\n%s", g.binary(), err, strings.TrimSpace(string(output)))
	}
	return strings.TrimSpace(string(output)), nil
}

// Clone performs a full clone of url into dir. git's own progress output is
// streamed to Progress. A non-zero exit is returned as an error.
func (g *Git) Clone(ctx context.Context, url, dir string) error {
	progress := g.Progress
	if progress == nil {
		progress = os.Stderr
	}

	cmd := exec.CommandContext(ctx, g.binary(), "clone", "--", url, dir)
	cmd.Stdout = progress
	cmd.Stderr = progress
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone %s: %w", url, err)
	}
	return nil
}

func (g *Git) binary() string {
	if g.Binary == "" {
		return "git"
	}
	return g.Binary
}
