package cli

import (
	"fmt"

	"github.com/lherron/dgadm/internal/cli/appctx"
	"github.com/lherron/dgadm/internal/dgraph"
	"github.com/spf13/cobra"
)

var dropDataCmd = &cobra.Command{
	Use:   "drop-data",
	Short: "Drop all data only (keep schema)",
	Long: `Removes every piece of data from the server but keeps the schema.
Prompts for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: appctx.WithApp(appctx.DefaultOptions(), runDropData),
}

var dropDataYes bool

func init() {
	rootCmd.AddCommand(dropDataCmd)
	dropDataCmd.Flags().BoolVar(&dropDataYes, "yes", false, "Skip confirmation prompt")
}

func runDropData(app *appctx.App, cmd *cobra.Command, args []string) error {
	if !dropDataYes {
		if err := confirmDrop(cmd, "all data (the schema is kept)"); err != nil {
			return err
		}
	}

	req, err := dgraph.Resolve(dgraph.DropData(), app.Config)
	if err != nil {
		return err
	}

	out := app.Client.Do(cmd.Context(), req)
	if !out.OK() {
		return outcomeError(out, true)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "success")
	return nil
}
