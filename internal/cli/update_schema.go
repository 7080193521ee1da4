package cli

import (
	"fmt"

	"github.com/lherron/dgadm/internal/cli/appctx"
	"github.com/lherron/dgadm/internal/dgraph"
	"github.com/spf13/cobra"
)

var updateSchemaCmd = &cobra.Command{
	Use:   "update-schema [file]",
	Short: "Add or modify the schema",
	Long: `Pushes a new schema to the server. The schema text is read from the
given file, or from stdin when the argument is omitted or is "-".

Examples:
  dgadm update-schema schema.dql
  cat schema.dql | dgadm update-schema
`,
	Args: cobra.MaximumNArgs(1),
	RunE: appctx.WithApp(appctx.DefaultOptions(), runUpdateSchema),
}

func init() {
	rootCmd.AddCommand(updateSchemaCmd)
}

func runUpdateSchema(app *appctx.App, cmd *cobra.Command, args []string) error {
	payload, err := readSchemaPayload(cmd, args)
	if err != nil {
		return err
	}

	req, err := dgraph.Resolve(dgraph.UpdateSchema(payload), app.Config)
	if err != nil {
		return err
	}

	out := app.Client.Do(cmd.Context(), req)
	if !out.OK() {
		return outcomeError(out, false)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "success")
	return nil
}
