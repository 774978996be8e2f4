package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/roman-numerals/internal/roman"
)

var validateCmd = &cobra.Command{
	Use:   "validate <numeral>",
	Short: "Check that a string is a well-formed Roman numeral",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := roman.Parse(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
