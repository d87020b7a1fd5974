package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entry names in your vault",
	Long: `List the names of your vault entries in the order they were added.

Values are never printed. Use 'vaultguard get <name>' for a value.`,
	Aliases: []string{"ls", "view"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format: text, json or yaml")
}

func runList(cmd *cobra.Command, _ []string) error {
	s, _, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Logout()

	names, err := app.mgr.List(s)
	if err != nil {
		return userError("list entries", err)
	}

	out := cmd.OutOrStdout()
	switch listOutput {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(names)
	case "text", "":
	default:
		return fmt.Errorf("unknown output format %q", listOutput)
	}

	if len(names) == 0 {
		Info(cmd.ErrOrStderr(), "No keys found.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
