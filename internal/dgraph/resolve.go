package dgraph

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lherron/dgadm/internal/config"
)

// Admin endpoint paths. These are fixed by the Dgraph HTTP admin API;
// a path change in a future API version is a constant change here, not
// a design change.
const (
	alterPath  = "/alter"
	schemaPath = "/admin/schema"
	healthPath = "/health"
)

// ErrEmptySchema is returned by Resolve for an update-schema command whose
// payload is empty or whitespace. It is caught before any network activity.
var ErrEmptySchema = errors.New("schema payload is empty")

// Request is a fully specified HTTP request for one admin operation.
// It is only ever produced by Resolve.
type Request struct {
	Method string
	Path   string
	Header map[string]string
	Body   []byte
}

// Resolve maps a command plus the endpoint configuration onto the request
// that performs it. Pure: identical inputs yield identical requests, and
// no network is touched. The configured auth header (if any) and the
// invocation's request id are attached to every request.
func Resolve(cmd Command, cfg *config.Config) (Request, error) {
	req := Request{Header: make(map[string]string)}

	switch cmd.Kind {
	case KindUpdateSchema:
		if strings.TrimSpace(cmd.Payload) == "" {
			return Request{}, ErrEmptySchema
		}
		req.Method = http.MethodPost
		req.Path = alterPath
		req.Header["Content-Type"] = "application/dql"
		req.Body = []byte(cmd.Payload)
	case KindGetSchema:
		req.Method = http.MethodGet
		req.Path = schemaPath
	case KindDropAll:
		req.Method = http.MethodPost
		req.Path = alterPath
		req.Header["Content-Type"] = "application/json"
		req.Body = []byte(`{"drop_op":"all"}`)
	case KindDropData:
		req.Method = http.MethodPost
		req.Path = alterPath
		req.Header["Content-Type"] = "application/json"
		req.Body = []byte(`{"drop_op":"data"}`)
	case KindGetHealth:
		req.Method = http.MethodGet
		req.Path = healthPath
	default:
		return Request{}, fmt.Errorf("unknown command kind %d", cmd.Kind)
	}

	if cfg.AuthName != "" {
		req.Header[cfg.AuthName] = cfg.AuthValue
	}
	if cfg.RequestID != "" {
		req.Header["X-Request-Id"] = cfg.RequestID
	}

	return req, nil
}
