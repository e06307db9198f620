package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// parseCmd interprets its arguments as a single date expression
var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse text as a date",
	Long: `Parse free-form text such as "tomorrow", "next friday 2pm", "in 3 days" or "12/25"
and print the resolved date with its confidence. Exits non-zero when nothing matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(formatFlag)
		if err != nil {
			return err
		}

		input := strings.Join(args, " ")
		now := eng.Now()
		result, ok := eng.Parse(input, now)
		if !ok {
			return fmt.Errorf("no date found in %q", input)
		}

		return writeParse(cmd.OutOrStdout(), format, newParseOutput(result, now, cfg.DisplayLayout))
	},
}
