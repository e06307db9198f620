package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/quickdate/internal/config"
	"github.com/MikeBiancalana/quickdate/internal/display"
	"github.com/MikeBiancalana/quickdate/internal/logger"
)

var replNoWatchFlag bool

// replCmd reads expressions line by line and prints parse and suggestions
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parse and suggestion loop",
	Long: `Read one expression per line from stdin and print its parse followed by the
suggestions for it. Edits to the config file are picked up while running.
Type "quit" or send EOF to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := &repl{
			out:         cmd.OutOrStdout(),
			timeEnabled: cfg.TimeEnabled,
			layout:      cfg.DisplayLayout,
		}

		var changes <-chan *config.Config
		if !replNoWatchFlag {
			if _, err := os.Stat(configPath); err == nil {
				w, err := config.NewWatcher(configPath, logger.GetLogger())
				if err != nil {
					return err
				}
				if err := w.Start(); err != nil {
					return err
				}
				defer w.Stop()
				changes = w.Changes()
			}
		}

		defer eng.LogStats()
		return r.run(cmd.InOrStdin(), changes)
	},
}

func init() {
	replCmd.Flags().BoolVar(&replNoWatchFlag, "no-watch", false, "Do not reload the config file on change")
}

type repl struct {
	out         io.Writer
	timeEnabled bool
	layout      string
}

type scanResult struct {
	line string
	err  error
	eof  bool
}

func (r *repl) run(in io.Reader, changes <-chan *config.Config) error {
	lines := make(chan scanResult)
	done := make(chan struct{})
	defer close(done)

	go func() {
		send := func(res scanResult) bool {
			select {
			case lines <- res:
				return true
			case <-done:
				return false
			}
		}
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			if !send(scanResult{line: scanner.Text()}) {
				return
			}
		}
		send(scanResult{err: scanner.Err(), eof: true})
	}()

	r.prompt()
	for {
		select {
		case c, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			r.apply(c)

		case res := <-lines:
			if res.eof {
				return res.err
			}
			line := strings.TrimSpace(res.line)
			if line == "quit" || line == "exit" {
				return nil
			}
			r.eval(line)
			r.prompt()
		}
	}
}

func (r *repl) prompt() {
	fmt.Fprint(r.out, "> ")
}

func (r *repl) apply(c *config.Config) {
	r.timeEnabled = c.TimeEnabled
	r.layout = c.DisplayLayout
	logger.Configure(c.Log.Level, c.Log.Format)
	logger.Info("repl config applied", "time_enabled", r.timeEnabled, "display_layout", r.layout)
}

func (r *repl) eval(line string) {
	// one instant for both the parse and the suggestions
	now := eng.Now()

	if line != "" {
		if result, ok := eng.Parse(line, now); ok {
			p := newParseOutput(result, now, r.layout)
			fmt.Fprintf(r.out, "%s  %s  %s\n", p.Display, display.RenderConfidence(p.Confidence), p.Relative)
		} else {
			fmt.Fprintln(r.out, "no date found")
		}
	}

	formatSuggestionsText(r.out, eng.Suggest(line, r.timeEnabled, now))
}
