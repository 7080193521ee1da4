package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lherron/dgadm/internal/cli/appctx"
	"github.com/lherron/dgadm/internal/dgraph"
	"github.com/lherron/dgadm/internal/render"
	"github.com/spf13/cobra"
)

var getHealthCmd = &cobra.Command{
	Use:   "get-health",
	Short: "Get status of nodes",
	Long: `Fetches cluster health and prints one line per node:

  ADDRESS is STATUS, uptime: DURATION

Use --json for the server's raw response, or set output: yaml in the
config for YAML.`,
	Args: cobra.NoArgs,
	RunE: appctx.WithApp(appctx.DefaultOptions(), runGetHealth),
}

var getHealthJSON bool

// healthNode is the subset of the health response this tool renders.
// The server sends more fields; they pass through untouched in --json mode.
type healthNode struct {
	Instance string `json:"instance,omitempty" yaml:"instance,omitempty"`
	Address  string `json:"address" yaml:"address"`
	Status   string `json:"status" yaml:"status"`
	Group    string `json:"group,omitempty" yaml:"group,omitempty"`
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	Uptime   int64  `json:"uptime" yaml:"uptime"`
}

func init() {
	rootCmd.AddCommand(getHealthCmd)
	getHealthCmd.Flags().BoolVar(&getHealthJSON, "json", false, "Print the raw health response")
}

func runGetHealth(app *appctx.App, cmd *cobra.Command, args []string) error {
	req, err := dgraph.Resolve(dgraph.GetHealth(), app.Config)
	if err != nil {
		return err
	}

	out := app.Client.Do(cmd.Context(), req)
	if !out.OK() {
		return outcomeError(out, false)
	}

	if getHealthJSON {
		fmt.Fprintln(cmd.OutOrStdout(), string(out.Body))
		return nil
	}

	var nodes []healthNode
	if err := json.Unmarshal(out.Body, &nodes); err != nil {
		// Unknown response shape; hand the operator the raw body.
		fmt.Fprintln(cmd.OutOrStdout(), string(out.Body))
		return nil
	}

	format, err := render.ParseFormat(app.Config.Output)
	if err != nil {
		return err
	}
	renderer := render.NewRenderer(cmd.OutOrStdout(), render.Options{Format: format})

	switch format {
	case render.FormatJSON:
		return renderer.RenderJSON(nodes)
	case render.FormatYAML:
		return renderer.RenderYAML(nodes)
	}

	for _, n := range nodes {
		uptime := time.Duration(n.Uptime) * time.Second
		fmt.Fprintf(cmd.OutOrStdout(), "%s is %s, uptime: %s\n", n.Address, n.Status, uptime)
	}
	return nil
}
