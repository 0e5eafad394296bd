package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/vaultwright/plugin-install/internal/branding"
	"github.com/vaultwright/plugin-install/internal/config"
	"github.com/vaultwright/plugin-install/internal/installer"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " --repo <url> --vault <path>",
	Short: branding.Description(),
	Long: `Install a ` + branding.HostApp() + ` community plugin straight from its git repository.

The repository is cloned into the current directory, its manifest.json is
validated, and main.js, manifest.json and (if present) styles.css are copied
into <vault>/` + branding.ConfigDir() + `/plugins/<plugin id>/. If the plugin is already
installed you are asked before it is replaced.`,
	Example:       "  " + branding.CLIName() + " --repo https://github.com/owner/my-plugin.git --vault ~/Notes",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
	RunE: runInstall,
}

// Execute runs the root command with build info injected via ldflags. An
// interrupt cancels the command context, which stops a running clone.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// printError reports err and, for installer failures, a remediation hint.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var ie *installer.Error
	if errors.As(err, &ie) {
		if hint := ie.Hint(); hint != "" {
			fmt.Fprintln(w, hint)
		}
	}
}
