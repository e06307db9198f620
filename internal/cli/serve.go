package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MikeBiancalana/quickdate/internal/httpapi"
	"github.com/MikeBiancalana/quickdate/internal/logger"
)

var serveAddrFlag string

// serveCmd runs the HTTP API until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parse and suggestion API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverCfg := cfg.Server
		if serveAddrFlag != "" {
			serverCfg.Addr = serveAddrFlag
		}

		srv, err := httpapi.New(eng, httpapi.Options{
			Server:        serverCfg,
			TimeEnabled:   cfg.TimeEnabled,
			DisplayLayout: cfg.DisplayLayout,
			Logger:        logger.GetLogger(),
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		defer eng.LogStats()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (overrides server.addr)")
}
