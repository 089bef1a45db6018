package commands

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sergioamr/esniper/internal/config"
	"github.com/sergioamr/esniper/internal/credential"
	eserrors "github.com/sergioamr/esniper/internal/errors"
	"github.com/sergioamr/esniper/internal/logging"
	"github.com/sergioamr/esniper/internal/prompt"
)

func NewLoginCommand(cfg *config.Config) *cobra.Command {
	var (
		user      string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the account password in the OS keyring",
		Long: `Prompt for the eBay account password (echo disabled) and file it in the
OS keyring, so it never has to sit in the configuration file.

Examples:
  esniper login                 # account from esniper.yaml, prompt for password
  esniper login --user bidder42 # explicit account
  esniper login --stdin < pw    # read password from stdin (scripted setups)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(cfg, user)
			if err != nil {
				return err
			}

			var plaintext []byte
			if fromStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return eserrors.UserError{
						Message: "Failed to read password from stdin",
						Details: err.Error(),
						Err:     err,
					}
				}
				plaintext = []byte(strings.TrimRight(line, "\r\n"))
			} else {
				plaintext, err = prompt.Password("eBay password for " + account + ": ")
				if err != nil {
					return eserrors.UserError{
						Message:    "Failed to read password",
						Details:    err.Error(),
						Suggestion: "Run from an interactive terminal, or pass --stdin",
						Err:        err,
					}
				}
			}
			if len(plaintext) == 0 {
				return eserrors.UserError{
					Message: "Empty password not stored",
				}
			}

			// Move the password into protected memory; the prompt's copy
			// is wiped by SetSecret, and the plaintext only reappears
			// briefly for the keyring write.
			guard := credential.NewGuard(nil)
			guard.SetSecret(plaintext)
			guard.Protect()
			defer guard.Dispose()

			guard.Reveal()
			err = credential.StorePassword(account, guard.Bytes())
			guard.Protect()
			if err != nil {
				return eserrors.UserError{
					Message:    "Failed to store password in keyring",
					Details:    err.Error(),
					Suggestion: "Check that a keyring service is available (Secret Service, Keychain, Credential Manager)",
					Err:        err,
				}
			}

			cfg.Logger.Debug("Keyring entry: account=%s value=%s", account, logging.Secret(guard.Bytes()))
			cfg.Logger.Info("Stored password for %s", account)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Account name (default: username from config)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from stdin instead of prompting")

	return cmd
}

// resolveAccount prefers an explicit --user flag and falls back to the
// configured username.
func resolveAccount(cfg *config.Config, user string) (string, error) {
	if user != "" {
		return user, nil
	}
	if err := cfg.Load(); err != nil {
		return "", err
	}
	return cfg.Settings.Username, nil
}
