package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Brydon13/vaultguard/internal/vault"
)

// openSession logs in as the configured user for a one-shot command.
// Prompts go to stderr so stdout stays pipe-friendly.
func openSession(cmd *cobra.Command) (*vault.Session, *prompter, error) {
	p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	username, err := resolveUser(p)
	if err != nil {
		return nil, nil, err
	}
	password, err := masterPassword(p)
	if err != nil {
		return nil, nil, err
	}

	s, err := app.mgr.Login(username, password)
	if err != nil {
		return nil, nil, userError("log in", err)
	}
	return s, p, nil
}

// userError turns a controller outcome into a message for the terminal.
// Authentication failures never say whether the user exists.
func userError(op string, err error) error {
	switch {
	case errors.Is(err, vault.ErrAuthFailed):
		return errors.New("login failed")
	case errors.Is(err, vault.ErrInvalidInput),
		errors.Is(err, vault.ErrExists),
		errors.Is(err, vault.ErrNotFound),
		errors.Is(err, vault.ErrNotLoggedIn):
		return fmt.Errorf("failed to %s: %v", op, err)
	default:
		app.logger.Error(op+" failed", "error", err)
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
