package dgraph

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/lherron/dgadm/internal/config"
)

func testConfig(t *testing.T, auth string) *config.Config {
	t.Helper()
	cfg := &config.Config{URL: "localhost:8080", Auth: auth}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	return cfg
}

func allCommands() []Command {
	return []Command{
		UpdateSchema("name: string ."),
		GetSchema(),
		DropAll(),
		DropData(),
		GetHealth(),
	}
}

func TestResolveMapping(t *testing.T) {
	cfg := testConfig(t, "")

	tests := []struct {
		name            string
		cmd             Command
		wantMethod      string
		wantPath        string
		wantBody        string
		wantContentType string
	}{
		{"update-schema", UpdateSchema("name: string ."), http.MethodPost, "/alter", "name: string .", "application/dql"},
		{"get-schema", GetSchema(), http.MethodGet, "/admin/schema", "", ""},
		{"drop-all", DropAll(), http.MethodPost, "/alter", `{"drop_op":"all"}`, "application/json"},
		{"drop-data", DropData(), http.MethodPost, "/alter", `{"drop_op":"data"}`, "application/json"},
		{"get-health", GetHealth(), http.MethodGet, "/health", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Resolve(tt.cmd, cfg)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("method = %s, want %s", req.Method, tt.wantMethod)
			}
			if req.Path != tt.wantPath {
				t.Errorf("path = %s, want %s", req.Path, tt.wantPath)
			}
			if string(req.Body) != tt.wantBody {
				t.Errorf("body = %q, want %q", req.Body, tt.wantBody)
			}
			if got := req.Header["Content-Type"]; got != tt.wantContentType {
				t.Errorf("content-type = %q, want %q", got, tt.wantContentType)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	cfg := testConfig(t, "X-Dgraph-AuthToken:abc")
	cfg.RequestID = "11111111-1111-1111-1111-111111111111"

	for _, cmd := range allCommands() {
		a, err := Resolve(cmd, cfg)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", cmd.Kind, err)
		}
		b, err := Resolve(cmd, cfg)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", cmd.Kind, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Resolve(%s) is not deterministic: %+v vs %+v", cmd.Kind, a, b)
		}
	}
}

func TestResolveAuthHeaderOnEveryCommand(t *testing.T) {
	cfg := testConfig(t, "X-Dgraph-AuthToken:abc")

	for _, cmd := range allCommands() {
		req, err := Resolve(cmd, cfg)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", cmd.Kind, err)
		}
		if got := req.Header["X-Dgraph-AuthToken"]; got != "abc" {
			t.Errorf("%s: auth header = %q, want %q", cmd.Kind, got, "abc")
		}
	}
}

func TestResolveNoAuthHeaderWhenUnconfigured(t *testing.T) {
	cfg := testConfig(t, "")

	for _, cmd := range allCommands() {
		req, err := Resolve(cmd, cfg)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", cmd.Kind, err)
		}
		for name := range req.Header {
			if name != "Content-Type" {
				t.Errorf("%s: unexpected header %q", cmd.Kind, name)
			}
		}
	}
}

func TestResolveRequestIDHeader(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.RequestID = "22222222-2222-2222-2222-222222222222"

	for _, cmd := range allCommands() {
		req, err := Resolve(cmd, cfg)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", cmd.Kind, err)
		}
		if got := req.Header["X-Request-Id"]; got != cfg.RequestID {
			t.Errorf("%s: request id = %q, want %q", cmd.Kind, got, cfg.RequestID)
		}
	}
}

func TestResolveEmptySchema(t *testing.T) {
	cfg := testConfig(t, "")

	for _, payload := range []string{"", "   ", "\n\t\n"} {
		if _, err := Resolve(UpdateSchema(payload), cfg); !errors.Is(err, ErrEmptySchema) {
			t.Errorf("Resolve(UpdateSchema(%q)) error = %v, want ErrEmptySchema", payload, err)
		}
	}
}

func TestDropBodiesDifferOnlyInDropOp(t *testing.T) {
	cfg := testConfig(t, "")

	all, err := Resolve(DropAll(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Resolve(DropData(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if all.Method != data.Method || all.Path != data.Path {
		t.Errorf("drop requests target different endpoints: %s %s vs %s %s",
			all.Method, all.Path, data.Method, data.Path)
	}

	var allBody, dataBody map[string]string
	if err := json.Unmarshal(all.Body, &allBody); err != nil {
		t.Fatalf("drop-all body is not JSON: %v", err)
	}
	if err := json.Unmarshal(data.Body, &dataBody); err != nil {
		t.Fatalf("drop-data body is not JSON: %v", err)
	}
	if len(allBody) != 1 || allBody["drop_op"] != "all" {
		t.Errorf("drop-all body = %v", allBody)
	}
	if len(dataBody) != 1 || dataBody["drop_op"] != "data" {
		t.Errorf("drop-data body = %v", dataBody)
	}
}

func TestKindString(t *testing.T) {
	names := map[Kind]string{
		KindUpdateSchema: "update-schema",
		KindGetSchema:    "get-schema",
		KindDropAll:      "drop-all",
		KindDropData:     "drop-data",
		KindGetHealth:    "get-health",
	}
	for kind, want := range names {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
