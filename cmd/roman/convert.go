package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/roman-numerals/internal/report"
	"github.com/pdiddy/roman-numerals/internal/roman"
)

var convertCmd = &cobra.Command{
	Use:   "convert <numeral>",
	Short: "Convert a Roman numeral to an integer",
	Long: `Convert prints the integer value of a Roman numeral. Matching ignores case,
so xiv and XIV both print 14.

An invalid numeral prints 0. With --strict it is reported as an error and the
command exits non-zero instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c := report.Convert(args[0])
		if cfg.Strict && !c.Valid {
			return fmt.Errorf("convert %q: %w", args[0], roman.ErrInvalidNumeral)
		}
		return report.Write(cmd.OutOrStdout(), c, cfg.Format)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
