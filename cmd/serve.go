package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lido333/openvm/server"
	"github.com/spf13/cobra"
)

var serveCmdPort string

func init() {
	serveCmd.Flags().StringVar(&serveCmdPort, "port", "", "listen port; overrides server.addr from the config")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the encode and witness endpoints over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Server
		if serveCmdPort != "" {
			cfg.Addr = ":" + serveCmdPort
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(cfg).Start(ctx)
	},
}
