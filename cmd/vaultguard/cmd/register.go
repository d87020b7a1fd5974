package cmd

import (
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new vault",
	Long: `Create a vault for a new user protected by a master password.

Usernames are 8-32 characters (letters, numbers, underscores, spaces).
Master passwords are 8-32 characters without spaces.

The master password is read from VAULTGUARD_PASSWORD, or prompted for twice.`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	username, err := resolveUser(p)
	if err != nil {
		return err
	}

	password, err := newMasterPassword(p)
	if err != nil {
		return err
	}

	s, err := app.mgr.Register(username, password)
	if err != nil {
		return userError("register", err)
	}
	defer s.Logout()

	Success(cmd.ErrOrStderr(), "Vault created for %s", Bold(username))
	return nil
}
