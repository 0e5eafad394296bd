package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vaultwright/plugin-install/internal/branding"
	"github.com/vaultwright/plugin-install/internal/config"
)

// newLogger returns the diagnostic logger at the configured level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
	})

	level, err := log.ParseLevel(config.LogLevel())
	if err != nil {
		level = log.WarnLevel
		logger.SetLevel(level)
		logger.Warn("unknown log level, using warn", "log_level", config.LogLevel())
		return logger
	}
	logger.SetLevel(level)
	return logger
}
