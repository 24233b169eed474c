package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/codecloak/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(buildOverrides())
		if err != nil {
			fail(cmd, ExitUsageError, err)
			return nil
		}
		svc, closeStore, err := openService(cfg)
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}
		defer closeStore()

		if err := server.New(svc, version).Run(cmd.Context(), cfg.Server.Addr); err != nil {
			fail(cmd, ExitRuntimeError, err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from config, 127.0.0.1:7420)")
}
