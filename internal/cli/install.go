package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vaultwright/plugin-install/internal/branding"
	"github.com/vaultwright/plugin-install/internal/config"
	"github.com/vaultwright/plugin-install/internal/installer"
	"github.com/vaultwright/plugin-install/internal/platform"
	"github.com/vaultwright/plugin-install/internal/source"
)

var (
	installRepo  string
	installVault string
)

func init() {
	rootCmd.Flags().StringVar(&installRepo, "repo", "", "Git repository URL of the plugin")
	rootCmd.Flags().StringVar(&installVault, "vault", "", "Path to the "+branding.HostApp()+" vault")
	_ = rootCmd.MarkFlagRequired("repo")
	_ = rootCmd.MarkFlagRequired("vault")
}

func runInstall(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr())

	git := source.NewGit(config.GitBinary())
	git.Progress = cmd.ErrOrStderr()

	inst := &installer.Installer{
		VCS:            git,
		FS:             platform.OS{},
		Confirm:        installer.NewLineConfirmer(cmd.InOrStdin(), cmd.OutOrStdout()),
		WorkDir:        workDir,
		VaultConfigDir: config.VaultConfigDir(),
		Out:            cmd.OutOrStdout(),
		Logger:         logger,
	}

	res, err := inst.Install(cmd.Context(), installer.Request{
		RepoURL:   installRepo,
		VaultRoot: installVault,
	})
	if err != nil {
		logger.Debug("installation failed", "kind", installer.KindOf(err))
		return err
	}

	logger.Info("installed", "id", res.Manifest.ID, "dir", res.Dir, "files", res.Files, "replaced", res.Replaced)
	return nil
}
