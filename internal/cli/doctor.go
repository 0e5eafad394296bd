package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vaultwright/plugin-install/internal/branding"
	"github.com/vaultwright/plugin-install/internal/config"
	"github.com/vaultwright/plugin-install/internal/installer"
	"github.com/vaultwright/plugin-install/internal/manifest"
	"github.com/vaultwright/plugin-install/internal/source"
	"github.com/vaultwright/plugin-install/internal/vault"
)

var (
	doctorVault    string
	checkManifest  string
	errDoctorFound = errors.New("doctor found problems")
)

func init() {
	doctorCmd.Flags().StringVar(&doctorVault, "vault", "", "Also check the "+branding.HostApp()+" vault at this path")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a plugin manifest file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that plugins can be installed from this machine",
	Long: `Run diagnostic checks: git availability, the config file, and
optionally a vault's plugin folder and a plugin manifest.`,
	Args: cobra.NoArgs,
	// Config is loaded by RunE so a broken file is reported instead of aborting.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		problems := 0

		// Defaults are in place even when the file cannot be read.
		loadErr := config.Load()

		problems += runGitCheck(cmd, out)
		problems += runConfigCheck(out, loadErr)
		if doctorVault != "" {
			problems += runVaultCheck(out, doctorVault)
		}
		if checkManifest != "" {
			problems += runManifestCheck(out, checkManifest)
		}

		if problems > 0 {
			return fmt.Errorf("%w: %d", errDoctorFound, problems)
		}
		return nil
	},
}

func runGitCheck(cmd *cobra.Command, out io.Writer) int {
	fmt.Fprintln(out, "Git check:")
	version, err := source.NewGit(config.GitBinary()).Version(cmd.Context())
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %v\n", err)
		fmt.Fprintf(out, "         %s\n", installer.ToolingMissing.Hint())
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s\n", version)
	return 0
}

func runConfigCheck(out io.Writer, loadErr error) int {
	fmt.Fprintln(out, "Config check:")
	path := config.FilePath()
	problems := 0
	switch _, err := os.Stat(path); {
	case loadErr != nil:
		fmt.Fprintf(out, "  [FAIL] %v\n", loadErr)
		problems++
	case os.IsNotExist(err):
		fmt.Fprintf(out, "  [INFO] %s not present, using defaults\n", path)
	default:
		fmt.Fprintf(out, "  [ OK ] %s loaded\n", path)
	}
	for _, key := range []string{config.KeyGitBinary, config.KeyLogLevel, config.KeyVaultConfigDir} {
		fmt.Fprintf(out, "         %s=%s (env %s)\n", key, config.Get(key), branding.EnvVar(key))
	}
	return problems
}

// runVaultCheck reports whether the vault has a plugin folder and lists the
// plugins installed in it.
func runVaultCheck(out io.Writer, root string) int {
	fmt.Fprintln(out, "Vault check:")
	layout := vault.NewLayout(root, config.VaultConfigDir())
	pluginsRoot := layout.PluginsRoot()

	entries, err := os.ReadDir(pluginsRoot)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", pluginsRoot)
		fmt.Fprintf(out, "         %s\n", installer.TargetNotInitialized.Hint())
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s exists\n", pluginsRoot)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		fmt.Fprintln(out, "  [INFO] No plugins installed")
		return 0
	}

	problems := 0
	for _, name := range names {
		m, err := manifest.ParseFile(filepath.Join(layout.PluginDir(name), manifest.FileName))
		switch {
		case err != nil:
			fmt.Fprintf(out, "  [WARN] %s: %v\n", name, err)
			problems++
		case m.ID != name:
			fmt.Fprintf(out, "  [WARN] %s: manifest id is %q\n", name, m.ID)
			problems++
		default:
			fmt.Fprintf(out, "  [ OK ] %s: %s\n", name, m.Name)
		}
	}
	return problems
}

func runManifestCheck(out io.Writer, path string) int {
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	m, err := manifest.ParseFile(path)
	if err == nil {
		fmt.Fprintf(out, "  [ OK ] Valid manifest: %s (%s)\n", m.Name, m.ID)
		return 0
	}

	var incomplete *manifest.IncompleteError
	if !errors.As(err, &incomplete) {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(incomplete.Issues))
	for _, issue := range incomplete.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return 1
}
