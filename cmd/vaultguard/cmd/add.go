package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Brydon13/vaultguard/internal/generator"
)

var (
	entryGenerate bool
	entryLength   int
)

var addCmd = &cobra.Command{
	Use:   "add <name> [value]",
	Short: "Add an entry to your vault",
	Long: `Encrypt a value and store it under a new name.

The value can be given as an argument, generated with --generate, or
typed at a prompt (hidden on a terminal).

Examples:
  vaultguard add email
  vaultguard add github-token ghp_xxx
  vaultguard add bank --generate --length 24`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <name> [value]",
	Short: "Replace the value of an existing entry",
	Long: `Encrypt a new value for an existing entry. The entry keeps its
position in the list.

The value can be given as an argument, generated with --generate, or
typed at a prompt (hidden on a terminal).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)

	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().BoolVarP(&entryGenerate, "generate", "g", false, "generate a strong random value")
		c.Flags().IntVarP(&entryLength, "length", "l", 0, "generated value length (default from config)")
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, p, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Logout()

	value, err := entryValue(cmd, p, args)
	if err != nil {
		return err
	}

	if err := app.mgr.Add(s, args[0], value); err != nil {
		return userError("add entry", err)
	}

	Success(cmd.ErrOrStderr(), "Key '%s' added", args[0])
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, p, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Logout()

	value, err := entryValue(cmd, p, args)
	if err != nil {
		return err
	}

	if err := app.mgr.Edit(s, args[0], value); err != nil {
		return userError("edit entry", err)
	}

	Success(cmd.ErrOrStderr(), "Key '%s' updated", args[0])
	return nil
}

// entryValue picks the value for add and edit: the positional argument, a
// generated secret, or a hidden prompt.
func entryValue(cmd *cobra.Command, p *prompter, args []string) (string, error) {
	if entryGenerate && len(args) == 2 {
		return "", fmt.Errorf("cannot use --generate with a value argument")
	}

	if entryGenerate {
		length := entryLength
		if length == 0 {
			length = app.cfg.Generator.Length
		}
		value, err := generator.Generate(length)
		if err != nil {
			return "", err
		}
		PrintKeyValue(cmd.ErrOrStderr(), "Generated password", value)
		return value, nil
	}

	if len(args) == 2 {
		return args[1], nil
	}
	return p.Secret("Value: ")
}
