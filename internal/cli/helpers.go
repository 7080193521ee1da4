package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lherron/dgadm/internal/dgraph"
	"github.com/spf13/cobra"
)

// Exit codes: application errors (the server rejected the operation) and
// transport errors (the request never completed) are distinguishable to
// scripts.
const (
	exitAppError  = 1
	exitTransport = 2
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// outcomeError converts a failed outcome into the error the CLI exits on.
// The server's own error body is passed through untouched so the operator
// sees Dgraph's diagnostic, not a paraphrase. For destructive commands a
// transport failure does not mean the drop was not applied; the message
// says so.
func outcomeError(out dgraph.Outcome, destructive bool) error {
	switch out.Class {
	case dgraph.ClassAppError:
		msg := fmt.Sprintf("server returned %d", out.Status)
		if body := strings.TrimSpace(string(out.Body)); body != "" {
			msg += ": " + body
		}
		return &ExitError{Code: exitAppError, Err: errors.New(msg)}
	case dgraph.ClassTransport:
		msg := out.Cause
		if destructive {
			msg += " (the request may have reached the server; the drop outcome is unknown)"
		}
		return &ExitError{Code: exitTransport, Err: errors.New(msg)}
	}
	return nil
}

// confirmDrop asks for confirmation before a destructive operation.
func confirmDrop(cmd *cobra.Command, what string) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "This will permanently remove %s from the server.\n", what)
	fmt.Fprintf(cmd.ErrOrStderr(), "Type 'yes' to confirm: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(response)) != "yes" {
		return fmt.Errorf("aborted")
	}
	return nil
}

// readSchemaPayload reads the schema text from the positional file argument,
// or from stdin when the argument is absent or "-".
func readSchemaPayload(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read schema file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read schema from stdin: %w", err)
	}
	return string(data), nil
}
