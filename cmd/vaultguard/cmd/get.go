package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a decrypted entry value",
	Long: `Print the decrypted value of an entry.

The value goes to stdout without a trailing newline. Prompts and messages
go to stderr, so the command can be used in pipes:
  TOKEN=$(vaultguard get github-token)`,
	Aliases: []string{"g"},
	Args:    cobra.ExactArgs(1),
	RunE:    runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	s, _, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Logout()

	value, err := app.mgr.Get(s, args[0])
	if err != nil {
		return userError("get entry", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), value)
	return nil
}
