package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"

	errwrap "github.com/wikilens/wiki/internal/errors"
)

// ExitWithCode exits the program with a semantic foundry exit code and logs the error.
//
// Parameters:
//   - logger: The logger to use for error output (can be nil for early failures)
//   - exitCode: The foundry exit code constant (e.g., foundry.ExitConfigInvalid)
//   - msg: Human-readable error message
//   - err: The underlying error (can be nil)
func ExitWithCode(logger *logging.Logger, exitCode foundry.ExitCode, msg string, err error) {
	info, ok := foundry.GetExitCodeInfo(exitCode)
	if !ok {
		fmt.Fprintf(os.Stderr, "FATAL: %s: %v (exit code: %d)\n", msg, err, exitCode)
		os.Exit(int(exitCode))
	}

	if logger != nil {
		fields := []zap.Field{
			zap.Int("exit_code", info.Code),
			zap.String("exit_name", info.Name),
		}

		if envelope, ok := errwrap.AsEnvelope(err); ok {
			fields = append(fields,
				zap.String("error_code", envelope.Code),
				zap.String("error_message", envelope.Message),
				zap.String("correlation_id", envelope.CorrelationID),
			)
			if original, ok := envelope.Original.(error); ok && original != nil {
				err = original
			}
		}

		fields = append(fields, zap.Error(err))
		logger.Error(msg, fields...)
	} else {
		writeDiagnostic(os.Stderr, msg, err)
		fmt.Fprintf(os.Stderr, "Exit Code: %d (%s) - %s\n", info.Code, info.Name, info.Description)
	}

	os.Exit(info.Code)
}

// writeDiagnostic renders err for a human on w.
func writeDiagnostic(w io.Writer, msg string, err error) {
	if err == nil {
		_, _ = fmt.Fprintf(w, "FATAL: %s\n", msg)
		return
	}

	envelope, ok := errwrap.AsEnvelope(err)
	if !ok {
		_, _ = fmt.Fprintf(w, "FATAL: %s: %v\n", msg, err)
		return
	}

	_, _ = fmt.Fprintf(w, "FATAL: %s [%s]: %s (correlation: %s)\n",
		msg, envelope.Code, envelope.Message, envelope.CorrelationID)
	if original, ok := envelope.Original.(error); ok && original != nil {
		_, _ = fmt.Fprintf(w, "Underlying error: %v\n", original)
	}
}
