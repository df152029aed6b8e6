// Package commands implements the fluentsql CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/fluentsql/internal/debug"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "fluentsql",
	Short: "Run queries against SQL Server",
	Long: `fluentsql is a parameterized T-SQL construction engine.

The CLI connects with the DATABASE_URL from your environment, .env file or
.fluentsql.yaml and runs statements through the same executor the library
exposes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
