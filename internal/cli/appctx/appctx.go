// Package appctx provides a shared bootstrap helper for CLI commands.
// It centralizes config loading, flag overrides, and client construction
// to reduce boilerplate across commands.
package appctx

import (
	"fmt"
	"strconv"

	"github.com/lherron/dgadm/internal/config"
	"github.com/lherron/dgadm/internal/dgraph"
	"github.com/spf13/cobra"
)

// App holds the shared application context for commands.
type App struct {
	// Config is the loaded and finalized configuration
	Config *config.Config

	// Client is the request executor (nil if NeedsClient is false)
	Client *dgraph.Executor
}

// Options configures the bootstrap behavior.
type Options struct {
	// NeedsClient indicates whether to construct the HTTP executor.
	// Commands that never touch the network (version) leave it false.
	NeedsClient bool
}

// DefaultOptions returns default options (client required).
func DefaultOptions() Options {
	return Options{NeedsClient: true}
}

// ConfigOnly returns options that load configuration without a client.
func ConfigOnly() Options {
	return Options{NeedsClient: false}
}

// RunFunc is the signature for command run functions.
type RunFunc func(app *App, cmd *cobra.Command, args []string) error

// WithApp wraps a command's run function with shared bootstrap logic.
// It loads config, applies the global flag overrides, and optionally
// constructs the executor.
func WithApp(opts Options, fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := Bootstrap(cmd, opts)
		if err != nil {
			return err
		}
		return fn(app, cmd, args)
	}
}

// Bootstrap initializes the App according to the given options.
func Bootstrap(cmd *cobra.Command, opts Options) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override from global flags if provided
	if urlFlag := cmd.Flag("url"); urlFlag != nil {
		if u := urlFlag.Value.String(); u != "" {
			cfg.URL = u
		}
	}
	if authFlag := cmd.Flag("auth"); authFlag != nil {
		if auth := authFlag.Value.String(); auth != "" {
			cfg.Auth = auth
		}
	}
	if timeoutFlag := cmd.Flag("timeout"); timeoutFlag != nil {
		if raw := timeoutFlag.Value.String(); raw != "" && raw != "0" {
			secs, err := strconv.Atoi(raw)
			if err != nil || secs <= 0 {
				return nil, fmt.Errorf("invalid --timeout %q: expected positive integer seconds", raw)
			}
			cfg.TimeoutSeconds = secs
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}

	app := &App{Config: cfg}
	if opts.NeedsClient {
		app.Client = dgraph.NewExecutor(cfg)
	}
	return app, nil
}
