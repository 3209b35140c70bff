// Package keyring keeps the postgres connection string in the OS keyring so
// the config file never has to carry a password.
package keyring

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/hakanduyar/goal-compass-daily/internal/constants"
)

var (
	ErrNotFound           = errors.New("connection string not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
	ErrEmptyConnString    = errors.New("connection string cannot be empty")
)

// Get returns the stored connection string for the given profile.
// An empty profile means the default one.
func Get(profile string) (string, error) {
	connStr, err := gokeyring.Get(constants.AppName, user(profile))
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

func Set(profile, connStr string) error {
	connStr = strings.TrimSpace(connStr)
	if connStr == "" {
		return ErrEmptyConnString
	}
	if err := gokeyring.Set(constants.AppName, user(profile), connStr); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

func Delete(profile string) error {
	if err := gokeyring.Delete(constants.AppName, user(profile)); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort probe; a missing entry still means the keyring works.
func IsAvailable() bool {
	_, err := gokeyring.Get(constants.AppName, "availability-check")
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}

func user(profile string) string {
	if profile == "" {
		return constants.DefaultKeyringUser
	}
	return constants.DefaultKeyringUser + ":" + profile
}

// Mask hides the password of a URL-style connection string for display.
// Key/value DSNs get their password= value replaced.
func Mask(connStr string) string {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" && u.User != nil {
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "xxxxx")
			return u.String()
		}
		return connStr
	}

	fields := strings.Fields(connStr)
	for i, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), "password=") {
			fields[i] = "password=xxxxx"
		}
	}
	return strings.Join(fields, " ")
}
