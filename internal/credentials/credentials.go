// Package credentials keeps AI provider API keys in the OS credential store
// (macOS Keychain, Windows Credential Manager, Linux Secret Service).
package credentials

import (
	"errors"
	"fmt"
	"strings"

	"skillhub/internal/apperrors"
	"skillhub/internal/logging"

	"github.com/zalando/go-keyring"
)

// Service name for OS credential store
const credentialService = "skillhub"

var (
	errEmptyProvider = errors.New("provider cannot be empty")
	errEmptyKey      = errors.New("api key cannot be empty")
)

// Manager stores one API key per AI provider.
type Manager struct {
	service string
}

// NewManager returns a Manager using the application keyring service.
func NewManager() *Manager {
	return &Manager{service: credentialService}
}

func accountFor(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider)) + "_api_key"
}

func checkProvider(op, provider string) error {
	if strings.TrimSpace(provider) == "" {
		return apperrors.Invalid(op, "", errEmptyProvider)
	}
	return nil
}

// Store saves key for provider, replacing any previous key.
func (m *Manager) Store(provider, key string) error {
	if err := checkProvider("store api key", provider); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return apperrors.Invalid("store api key", provider, errEmptyKey)
	}

	if err := keyring.Set(m.service, accountFor(provider), key); err != nil {
		return fmt.Errorf("failed to store api key in credential store: %w", err)
	}

	logging.Info("Stored API key", "provider", provider)
	return nil
}

// Get returns the key stored for provider. A missing key is
// apperrors.ErrNotFound.
func (m *Manager) Get(provider string) (string, error) {
	if err := checkProvider("get api key", provider); err != nil {
		return "", err
	}

	key, err := keyring.Get(m.service, accountFor(provider))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", apperrors.NotFound("get api key", provider, err)
		}
		return "", fmt.Errorf("failed to retrieve api key from credential store: %w", err)
	}
	return key, nil
}

// Delete removes the key for provider. Deleting a key that was never stored
// is not an error.
func (m *Manager) Delete(provider string) error {
	if err := checkProvider("delete api key", provider); err != nil {
		return err
	}

	err := keyring.Delete(m.service, accountFor(provider))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete api key from credential store: %w", err)
	}

	logging.Info("Deleted API key", "provider", provider)
	return nil
}

// Has reports whether a key is stored for provider.
func (m *Manager) Has(provider string) bool {
	_, err := m.Get(provider)
	return err == nil
}
