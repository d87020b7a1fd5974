package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Brydon13/vaultguard/internal/generator"
)

var generateLength int

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a strong random password",
	Long: `Print a random password with at least one uppercase letter, one
lowercase letter, one digit and one symbol. Nothing is stored.`,
	Aliases:     []string{"gen"},
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoStore: "true"},
	RunE:        runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "password length (default from config)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	length := generateLength
	if length == 0 {
		length = app.cfg.Generator.Length
	}

	password, err := generator.Generate(length)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), password)
	return nil
}
