// Command toolschema prints, checks and exercises strict function-calling
// descriptors.
//
// Usage:
//
//	toolschema print [--format openai|anthropic|google] [--check]
//	toolschema chat
//	toolschema mcp
//
// The chat command sends an example conversation to the configured chat
// completion endpoint with the example tools attached. It needs an API key
// in OPENAI_API_KEY or TOOLSCHEMA_API_KEY; a .env file in the working
// directory is loaded if present.
//
// Exit codes: 0 on success, 1 on failure (including a rejected request),
// 2 when configuration is missing.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spetersoncode/toolschema"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	logger := a.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	attrs := []any{"error", err}
	var e *toolschema.Error
	if errors.As(err, &e) && e.Body != "" {
		attrs = append(attrs, "status", e.Code, "body", e.Body)
	}
	logger.Error("command failed", attrs...)
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case toolschema.IsConfigMissing(err):
		return 2
	default:
		return 1
	}
}
