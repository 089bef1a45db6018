package commands

import (
	"github.com/spf13/cobra"

	"github.com/sergioamr/esniper/internal/config"
	"github.com/sergioamr/esniper/internal/credential"
	eserrors "github.com/sergioamr/esniper/internal/errors"
)

func NewLogoutCommand(cfg *config.Config) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored password from the OS keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(cfg, user)
			if err != nil {
				return err
			}

			if err := credential.ForgetPassword(account); err != nil {
				return eserrors.UserError{
					Message: "Failed to remove password from keyring",
					Details: err.Error(),
					Err:     err,
				}
			}

			cfg.Logger.Info("Removed stored password for %s", account)
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Account name (default: username from config)")

	return cmd
}
