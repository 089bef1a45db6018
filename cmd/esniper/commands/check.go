package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/sergioamr/esniper/internal/config"
	"github.com/sergioamr/esniper/internal/credential"
)

func NewCheckCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and credential availability",
		Long: `Load the configuration file, validate the proxy setting, and report
where the account password will come from, without placing any bids.

Examples:
  esniper check
  esniper --config ~/.config/esniper.yaml check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}
			logger := cfg.Logger

			logger.Info("Configuration loaded from %s", cfg.Path)
			logger.Info("Username: %s", cfg.Settings.Username)

			if cfg.Proxy.Enabled() {
				logger.Info("Proxy: %s", cfg.Proxy.String())
			} else {
				logger.Info("Proxy: disabled (direct connection)")
			}

			if cfg.Settings.LogDir != "" {
				if fi, err := os.Stat(cfg.Settings.LogDir); err != nil || !fi.IsDir() {
					logger.Warn("Log directory %s does not exist; session logs will fail to open", cfg.Settings.LogDir)
				} else {
					logger.Info("Session logs: %s", cfg.Settings.LogDir)
				}
			}

			checkPasswordSource(cfg)
			return nil
		},
	}
}

func checkPasswordSource(cfg *config.Config) {
	logger := cfg.Logger

	if cfg.Settings.Password != "" {
		logger.Warn("Password is stored in plaintext in %s; run 'esniper login' and remove it", cfg.Path)
		return
	}

	pw, err := credential.LoadPassword(cfg.Settings.Username)
	switch {
	case err == nil:
		// Don't keep the plaintext around longer than the check itself.
		guard := credential.NewGuard(nil)
		guard.SetSecret(pw)
		guard.Protect()
		defer guard.Dispose()
		logger.Info("Password: stored in OS keyring (%d bytes)", guard.Len())
	case errors.Is(err, credential.ErrNoStoredPassword):
		if cfg.NonInteractive {
			logger.Error("No stored password and non-interactive mode is set; run 'esniper login' first")
		} else {
			logger.Warn("No stored password; you will be prompted, or run 'esniper login' to store one")
		}
	default:
		logger.Error("Keyring unavailable: %v", err)
	}
}
