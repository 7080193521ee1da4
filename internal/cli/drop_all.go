package cli

import (
	"fmt"

	"github.com/lherron/dgadm/internal/cli/appctx"
	"github.com/lherron/dgadm/internal/dgraph"
	"github.com/spf13/cobra"
)

var dropAllCmd = &cobra.Command{
	Use:   "drop-all",
	Short: "Drop all data and schema",
	Long: `Removes every piece of data and the schema from the server.
Prompts for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: appctx.WithApp(appctx.DefaultOptions(), runDropAll),
}

var dropAllYes bool

func init() {
	rootCmd.AddCommand(dropAllCmd)
	dropAllCmd.Flags().BoolVar(&dropAllYes, "yes", false, "Skip confirmation prompt")
}

func runDropAll(app *appctx.App, cmd *cobra.Command, args []string) error {
	if !dropAllYes {
		if err := confirmDrop(cmd, "all data and the schema"); err != nil {
			return err
		}
	}

	req, err := dgraph.Resolve(dgraph.DropAll(), app.Config)
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
