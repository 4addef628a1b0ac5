package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OfficialArms/virtool/internal/app/client"
)

var noPush bool

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Start mirroring the Virtool server",
	Long: `Starts the mirror: the state store, the effect runner, the push
listener and the local view API. Stops on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.APIKey == "" {
			log.Warn("no API key configured, requests will be anonymous; run virtool login")
		}

		var opts []client.Option
		if noPush {
			opts = append(opts, client.WithoutPush())
		}

		app, err := client.New(cmd.Context(), cfg, log, opts...)
		if err != nil {
			return fmt.Errorf("init daemon: %w", err)
		}
		defer app.Close()

		return app.RunWithSignals(cmd.Context())
	},
}

func init() {
	daemonCmd.Flags().BoolVar(&noPush, "no-push", false, "do not open the push WebSocket")
}
