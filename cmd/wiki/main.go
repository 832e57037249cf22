package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/wikilens/wiki/internal/cmd"
	errwrap "github.com/wikilens/wiki/internal/errors"
	"github.com/wikilens/wiki/internal/observability"
)

// Version information set via ldflags during build
// Example: go build -ldflags="-X main.version=1.0.0 -X main.commit=abc123 -X main.buildDate=2025-10-28"
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, buildDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Every failure is fatal: report it once and exit with the mapped code.
		cmd.ExitWithCode(observability.CLILogger, errwrap.ExitCodeFor(err), "Command failed", err)
	}
}
