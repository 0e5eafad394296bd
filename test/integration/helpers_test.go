//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vaultwright/plugin-install/internal/installer"
	"github.com/vaultwright/plugin-install/internal/platform"
	"github.com/vaultwright/plugin-install/internal/source"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	WorkDir    string // where repositories are cloned
	VaultDir   string // vault root containing .obsidian/plugins
	PluginsDir string // <VaultDir>/.obsidian/plugins
	RemoteDir  string // parent of local "remote" repositories
}

// setupTestEnv creates isolated temp directories with an initialized vault.
// Tests are skipped when git is not installed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	env := &testEnv{
		WorkDir:   t.TempDir(),
		VaultDir:  t.TempDir(),
		RemoteDir: t.TempDir(),
	}
	env.PluginsDir = filepath.Join(env.VaultDir, ".obsidian", "plugins")
	if err := os.MkdirAll(env.PluginsDir, 0755); err != nil {
		t.Fatalf("creating plugins dir: %v", err)
	}
	return env
}

// setupRemote creates a git repository named name holding files and returns
// its path, usable as a clone URL.
func setupRemote(t *testing.T, env *testEnv, name string, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(env.RemoteDir, name)
	for rel, content := range files {
		writeFile(t, filepath.Join(dir, rel), content)
	}

	for _, args := range [][]string{
		{"init", "--quiet"},
		{"add", "."},
		{"-c", "user.name=test", "-c", "user.email=test@example.com", "-c", "commit.gpgsign=false", "commit", "--quiet", "-m", "initial"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
		}
	}
	return dir
}

// newInstaller wires the real git client and filesystem. answer is used for
// the overwrite prompt.
func newInstaller(env *testEnv, answer string, out *bytes.Buffer) *installer.Installer {
	git := source.NewGit("git")
	git.Progress = &bytes.Buffer{}
	return &installer.Installer{
		VCS:     git,
		FS:      platform.OS{},
		Confirm: installer.NewLineConfirmer(strings.NewReader(answer), out),
		WorkDir: env.WorkDir,
		Out:     out,
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirEntries fails unless dir contains exactly names.
func assertDirEntries(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Errorf("reading %s: %v", dir, err)
		return
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, ",") != strings.Join(names, ",") {
		t.Errorf("%s contains %v, want %v", dir, got, names)
	}
}

// assertSameContent fails unless both files hold identical bytes.
func assertSameContent(t *testing.T, want, got string) {
	t.Helper()
	a, err := os.ReadFile(want)
	if err != nil {
		t.Errorf("reading %s: %v", want, err)
		return
	}
	b, err := os.ReadFile(got)
	if err != nil {
		t.Errorf("reading %s: %v", got, err)
		return
	}
	if !bytes.Equal(a, b) {
		t.Errorf("%s is not byte-identical to %s", got, want)
	}
}
