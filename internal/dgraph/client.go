package dgraph

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/lherron/dgadm/internal/config"
)

// Executor performs resolved requests against one configured endpoint.
type Executor struct {
	base   string
	client *http.Client
}

// NewExecutor creates an executor for the configured base URL and timeout.
func NewExecutor(cfg *config.Config) *Executor {
	return &Executor{
		base: cfg.BaseURL,
		client: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// Do performs exactly one HTTP round trip for the request and classifies
// the result. There are no retries: a transport failure on a mutating
// command leaves the remote outcome unknown, and retrying would turn
// "unknown" into "maybe twice".
func (e *Executor) Do(ctx context.Context, req Request) Outcome {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, e.base+req.Path, body)
	if err != nil {
		return Outcome{Class: ClassTransport, Cause: err.Error()}
	}
	for name, value := range req.Header {
		httpReq.Header.Set(name, value)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return Outcome{Class: ClassTransport, Cause: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Class: ClassTransport, Cause: err.Error()}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{Class: ClassSuccess, Status: resp.StatusCode, Body: respBody}
	}
	return Outcome{Class: ClassAppError, Status: resp.StatusCode, Body: respBody}
}
