package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/quickdate/internal/display"
)

var (
	formatLayoutFlag string
	formatEditFlag   bool
)

// formatCmd prints a parsed date in a single layout
var formatCmd = &cobra.Command{
	Use:   "format <text>",
	Short: "Print a parsed date in a chosen layout",
	Long: `Parse text and print only the resolved date. By default the configured
display layout is used; --layout takes any Go reference layout and --edit prints
the editable YYYY-MM-DD[ HH:MM] form.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		result, ok := eng.Parse(input, eng.Now())
		if !ok {
			return fmt.Errorf("no date found in %q", input)
		}

		var text string
		if formatEditFlag {
			text = display.FormatForEditing(result.Date, result.Components.Time != "")
		} else {
			layout := formatLayoutFlag
			if layout == "" {
				layout = cfg.DisplayLayout
			}
			text = display.FormatForDisplay(result.Date, layout)
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	formatCmd.Flags().StringVar(&formatLayoutFlag, "layout", "", "Go time layout, e.g. \"Monday, January 2\"")
	formatCmd.Flags().BoolVar(&formatEditFlag, "edit", false, "Print the editable form")
}
