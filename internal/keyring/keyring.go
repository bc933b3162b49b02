package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/hauskeep/dispatch/internal/constants"
)

var (
	// ErrNotFound is returned when no API token is stored in the keyring
	ErrNotFound = errors.New("API token not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetToken resolves the backend API token. The DISPATCH_API_TOKEN
// environment variable wins over the OS keyring so headless environments can
// inject the token without a keyring daemon.
func GetToken() (string, error) {
	if token := os.Getenv(constants.TokenEnvVar); token != "" {
		return token, nil
	}
	token, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// SetToken stores the backend API token in the OS keyring.
func SetToken(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the stored API token from the OS keyring.
func DeleteToken() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}
