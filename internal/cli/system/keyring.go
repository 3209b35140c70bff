package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hakanduyar/goal-compass-daily/internal/cli"
	"github.com/hakanduyar/goal-compass-daily/internal/constants"
	"github.com/hakanduyar/goal-compass-daily/internal/keyring"
	"github.com/hakanduyar/goal-compass-daily/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is usable."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string."`
	Profile          string `help:"Store under a named profile instead of the default one."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	connStr := strings.TrimSpace(cmd.ConnectionString)
	if !postgres.IsConnString(connStr) && !strings.Contains(connStr, "host=") {
		return errors.New("connection string must be a PostgreSQL URL or key=value DSN")
	}

	// The keyring is the one place a password may live.
	if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return err
	}

	if err := keyring.Set(cmd.Profile, connStr); err != nil {
		return err
	}
	ctx.Println("✓ Connection string stored in OS keyring")
	ctx.Printf("  Run %s with --config postgresql to use it\n", constants.AppName)
	return nil
}

type KeyringGetCmd struct {
	Profile string `help:"Named profile to read."`
}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.Get(cmd.Profile)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no connection string found in keyring, use '%s keyring set' to store one", constants.AppName)
		}
		return err
	}
	ctx.Println(keyring.Mask(connStr))
	return nil
}

type KeyringDeleteCmd struct {
	Profile string `help:"Named profile to delete."`
}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.Delete(cmd.Profile); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	ctx.Println("✓ Connection string deleted from OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	ctx.Println("✓ OS keyring is available")
	if _, err := keyring.Get(""); err == nil {
		ctx.Println("✓ Connection string is stored")
	} else {
		ctx.Println("ℹ No connection string stored")
	}
	return nil
}
