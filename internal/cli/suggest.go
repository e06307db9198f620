package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var suggestNoTimeFlag bool

// suggestCmd lists completions for partially typed text
var suggestCmd = &cobra.Command{
	Use:   "suggest [text]",
	Short: "Suggest date completions",
	Long:  "List ranked completions for partially typed text. With no text, a curated starter set is shown.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(formatFlag)
		if err != nil {
			return err
		}

		timeEnabled := cfg.TimeEnabled && !suggestNoTimeFlag
		list := eng.Suggest(strings.Join(args, " "), timeEnabled, eng.Now())
		return writeSuggestions(cmd.OutOrStdout(), format, list)
	},
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestNoTimeFlag, "no-time", false, "Omit time-of-day suggestions")
}
