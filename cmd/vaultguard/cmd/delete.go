package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an entry",
	Long: `Delete an entry from your vault.

By default, you will be prompted to confirm the deletion.
Use --yes or -y to skip the confirmation prompt.`,
	Aliases: []string{"rm", "remove"},
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteForce, "yes", "y", false, "skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, p, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Logout()

	name := args[0]
	if !deleteForce {
		answer, err := p.Line(fmt.Sprintf("Delete key '%s'? [y/N]: ", name))
		if err != nil {
			return err
		}
		if !isYes(answer) {
			Info(cmd.ErrOrStderr(), "Canceled")
			return nil
		}
	}

	if err := app.mgr.Delete(s, name); err != nil {
		return userError("delete entry", err)
	}

	Success(cmd.ErrOrStderr(), "Key '%s' deleted", name)
	return nil
}
