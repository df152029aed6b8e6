package commands

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/fluentsql/cli/internal/config"
	"github.com/satishbabariya/fluentsql/runtime/client"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check database connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is not set")
		}

		c, err := client.NewClient(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := c.Connect(ctx); err != nil {
			pterm.Error.Println("connection failed:", err)
			return err
		}
		defer c.Disconnect(context.Background())

		health, err := c.HealthCheck(ctx)
		if err != nil {
			pterm.Error.Println("health check failed:", err)
			return err
		}

		pterm.Success.Println("connected")
		pterm.Info.Printfln("server time: %s", health.ServerTime.Format(time.RFC3339))
		pterm.Info.Printfln("version: %s", health.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
