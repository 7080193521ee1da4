package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lherron/dgadm/internal/cli/appctx"
	"github.com/lherron/dgadm/internal/dgraph"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

var getSchemaCmd = &cobra.Command{
	Use:   "get-schema",
	Short: "Get the current schema",
	Long: `Fetches the schema from the server and prints it.

With --diff, compares the server schema against a local file and prints
a unified diff. Exits with code 1 when they differ, 0 when identical.
`,
	Args: cobra.NoArgs,
	RunE: appctx.WithApp(appctx.DefaultOptions(), runGetSchema),
}

var (
	getSchemaDiff    string
	getSchemaUnified int
)

func init() {
	rootCmd.AddCommand(getSchemaCmd)
	getSchemaCmd.Flags().StringVar(&getSchemaDiff, "diff", "", "Compare server schema against a local file")
	getSchemaCmd.Flags().IntVar(&getSchemaUnified, "unified", 3, "Lines of unified context for --diff")
}

func runGetSchema(app *appctx.App, cmd *cobra.Command, args []string) error {
	req, err := dgraph.Resolve(dgraph.GetSchema(), app.Config)
	if err != nil {
		return err
	}

	out := app.Client.Do(cmd.Context(), req)
	if !out.OK() {
		return outcomeError(out, false)
	}

	remote := string(out.Body)

	if getSchemaDiff != "" {
		return diffSchema(cmd, remote)
	}

	// A freshly dropped database reports an empty schema.
	if strings.TrimSpace(remote) == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no schema")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(remote))
	return nil
}

func diffSchema(cmd *cobra.Command, remote string) error {
	local, err := os.ReadFile(getSchemaDiff)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}

	if string(local) == remote {
		return nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(local)),
		B:        difflib.SplitLines(remote),
		FromFile: getSchemaDiff,
		ToFile:   "server",
		Context:  getSchemaUnified,
	}
	diffText, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to compute diff: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), diffText)
	return &ExitError{Code: 1, Err: errors.New("schema differs from " + getSchemaDiff)}
}
