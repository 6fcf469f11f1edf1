// Package credstore persists the user's upstream API key between
// sessions, the way the browser form keeps it in local storage: one
// opaque string under one fixed key, no expiry, no validation.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// StorageKey is the single key the store holds.
const StorageKey = "api_key"

const (
	dirName  = "facecli"
	fileName = "credentials.yaml"
)

// Store reads and writes the stored credential file.
type Store struct {
	path string
}

// Open returns a store backed by a file under dir. An empty dir selects
// the user config directory.
func Open(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, dirName)
	}
	return &Store{path: filepath.Join(dir, fileName)}, nil
}

// Load returns the stored credential, or "" when none is stored.
func (s *Store) Load() (string, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		// An absent file simply means nothing was saved yet.
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read credentials: %w", err)
	}

	return v.GetString(StorageKey), nil
}

// Save stores the credential, overwriting any previous value.
func (s *Store) Save(key string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	v.SetConfigPermissions(0o600)
	v.Set(StorageKey, key)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Remove deletes the stored credential. Removing an absent credential
// is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}
