package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// dueCmd classifies a date expression as a due date
var dueCmd = &cobra.Command{
	Use:   "due [text]",
	Short: "Show due-date status for a date expression",
	Long:  "Parse text and report whether it is overdue, due today, due tomorrow or later. Text that does not parse has no due date.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(formatFlag)
		if err != nil {
			return err
		}

		input := strings.Join(args, " ")
		info, result := eng.Due(input, eng.Now())
		out := dueOutput{Input: input, Due: info}
		if result != nil {
			out.Date = &result.Date
		}
		return writeDue(cmd.OutOrStdout(), format, out)
	},
}
