package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dgadm",
	Short: "Command-line admin client for Dgraph",
	Long: `dgadm manages a Dgraph instance over its HTTP admin API:
update or fetch the schema, drop data, and check cluster health.
It works against self-hosted and cloud instances; cloud auth is just
a different header name passed via --auth.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("url", "", "Dgraph base URL (overrides DGADM_URL)")
	rootCmd.PersistentFlags().String("auth", "", "Auth header as Name:Value (overrides DGADM_AUTH)")
	rootCmd.PersistentFlags().Int("timeout", 0, "HTTP timeout in seconds (overrides DGADM_TIMEOUT)")
}
