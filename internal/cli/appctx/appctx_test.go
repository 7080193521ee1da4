package appctx

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func newFlaggedCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().String("url", "", "")
	cmd.Flags().String("auth", "", "")
	cmd.Flags().Int("timeout", 0, "")
	return cmd
}

func isolate(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("DGADM_URL", "")
	t.Setenv("DGADM_AUTH", "")
	t.Setenv("DGADM_AUTH_FILE", "")
	t.Setenv("DGADM_TIMEOUT", "")
	t.Setenv("DGADM_OUTPUT", "")

	oldCwd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldCwd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
}

func TestBootstrapDefaults(t *testing.T) {
	isolate(t)

	app, err := Bootstrap(newFlaggedCmd(), DefaultOptions())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if app.Config.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", app.Config.BaseURL)
	}
	if app.Client == nil {
		t.Error("expected a client with DefaultOptions")
	}
}

func TestBootstrapConfigOnly(t *testing.T) {
	isolate(t)

	app, err := Bootstrap(newFlaggedCmd(), ConfigOnly())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if app.Client != nil {
		t.Error("ConfigOnly must not construct a client")
	}
}

func TestBootstrapFlagOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DGADM_URL", "http://from-env:8080")

	cmd := newFlaggedCmd()
	if err := cmd.Flags().Set("url", "https://from-flag:9080"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("auth", "X-Dgraph-AuthToken:abc"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("timeout", "7"); err != nil {
		t.Fatal(err)
	}

	app, err := Bootstrap(cmd, DefaultOptions())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if app.Config.BaseURL != "https://from-flag:9080" {
		t.Errorf("BaseURL = %q, flag should beat env", app.Config.BaseURL)
	}
	if app.Config.AuthName != "X-Dgraph-AuthToken" || app.Config.AuthValue != "abc" {
		t.Errorf("auth = (%q, %q)", app.Config.AuthName, app.Config.AuthValue)
	}
	if app.Config.TimeoutSeconds != 7 {
		t.Errorf("timeout = %d", app.Config.TimeoutSeconds)
	}
}

func TestBootstrapMalformedAuthFlag(t *testing.T) {
	isolate(t)

	cmd := newFlaggedCmd()
	if err := cmd.Flags().Set("auth", "nocolon"); err != nil {
		t.Fatal(err)
	}

	if _, err := Bootstrap(cmd, DefaultOptions()); err == nil {
		t.Fatal("expected error for malformed auth flag")
	}
}
