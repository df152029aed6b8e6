package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/fluentsql/cli/internal/config"
	"github.com/satishbabariya/fluentsql/query/sqlgen"
	"github.com/satishbabariya/fluentsql/runtime/client"
)

var execTimeout time.Duration

var execCmd = &cobra.Command{
	Use:   "exec <sql>",
	Short: "Run a SQL statement and print the result",
	Args:  cobra.ExactArgs(1),
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
		ctx, cancel := context.WithTimeout(cmd.Context(), execTimeout)
		defer cancel()

		if err := c.Connect(ctx); err != nil {
			return err
		}
		defer c.Disconnect(context.Background())

		executor := client.NewExecutor(c)
		rows, err := executor.Execute(ctx, &sqlgen.Query{
			SQL:        args[0],
			Parameters: sqlgen.NewParameters(),
		})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			pterm.Info.Println("no rows")
			return nil
		}
		return renderRows(rows)
	},
}

func init() {
	execCmd.Flags().DurationVar(&execTimeout, "timeout", 30*time.Second, "statement timeout")
	rootCmd.AddCommand(execCmd)
}

func renderRows(rows []client.Row) error {
	columns := make([]string, 0, len(rows[0]))
	for col := range rows[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	table := pterm.TableData{columns}
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = fmt.Sprintf("%v", row[col])
		}
		table = append(table, cells)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}
