package credential

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Service name under which esniper passwords are filed in the OS keyring
// (macOS Keychain, Linux Secret Service, Windows Credential Manager).
const keyringService = "esniper"

// ErrNoStoredPassword is returned by LoadPassword when the keyring has no
// entry for the account.
var ErrNoStoredPassword = errors.New("no password stored in keyring")

// LoadPassword fetches the stored password for an eBay account from the
// OS keyring. Callers should move the result into a Guard and protect it
// promptly.
func LoadPassword(account string) ([]byte, error) {
	secret, err := keyring.Get(keyringService, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNoStoredPassword
		}
		return nil, fmt.Errorf("keyring lookup for %q: %w", account, err)
	}
	return []byte(secret), nil
}

// StorePassword files the password for an account in the OS keyring,
// replacing any previous entry.
func StorePassword(account string, password []byte) error {
	if err := keyring.Set(keyringService, account, string(password)); err != nil {
		return fmt.Errorf("keyring store for %q: %w", account, err)
	}
	return nil
}

// ForgetPassword removes the stored password for an account. Removing an
// entry that does not exist is not an error.
func ForgetPassword(account string) error {
	if err := keyring.Delete(keyringService, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("keyring delete for %q: %w", account, err)
	}
	return nil
}
