package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/quickdate/internal/clock"
	"github.com/MikeBiancalana/quickdate/internal/config"
	"github.com/MikeBiancalana/quickdate/internal/engine"
	"github.com/MikeBiancalana/quickdate/internal/logger"
)

var (
	nowFlag    string
	configFlag string
	formatFlag string

	// set by initApp before any subcommand runs
	cfg        *config.Config
	configPath string
	eng        *engine.Engine
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "qd",
	Short: "QuickDate - natural language date parsing",
	Long: `Interpret short free-form text such as "tomorrow 3pm", "next fri" or "dec 25"
as a calendar date with a confidence score, and suggest completions while typing.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "pin the current time (RFC3339, YYYY-MM-DD HH:MM or YYYY-MM-DD)")
	RootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.quickdate/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&formatFlag, "format", "text", "output format (text, json, tsv, csv)")

	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(suggestCmd)
	RootCmd.AddCommand(dueCmd)
	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(replCmd)
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(GetConfigCommand())
}

// initApp loads config, configures logging and builds the engine
func initApp(cmd *cobra.Command, args []string) error {
	if _, err := parseFormat(formatFlag); err != nil {
		return err
	}

	configPath = configFlag
	if configPath == "" {
		path, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		configPath = path
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	logger.Configure(cfg.Log.Level, cfg.Log.Format)

	var clk clock.Clock = clock.System{}
	if nowFlag != "" {
		t, err := clock.Parse(nowFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		clk = clock.NewFixed(t)
	}

	eng, err = engine.New(engine.Options{
		Clock:     clk,
		Logger:    logger.GetLogger(),
		CacheSize: cfg.Cache.Size,
	})
	if err != nil {
		return err
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
