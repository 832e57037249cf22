package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errwrap "github.com/wikilens/wiki/internal/errors"
)

// argsBetween validates the positional argument count as invalid input
// rather than as a cobra usage error.
func argsBetween(min, max int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) < min:
			return errwrap.WrapInvalidInput(cmd.Context(), fmt.Errorf("missing %s", what), fmt.Sprintf("%s requires %s", cmd.Name(), what))
		case max >= 0 && len(args) > max:
			return errwrap.WrapInvalidInput(cmd.Context(), fmt.Errorf("unexpected arguments: %s", strings.Join(args[max:], " ")), fmt.Sprintf("%s accepts at most %d argument(s)", cmd.Name(), max))
		default:
			return nil
		}
	}
}

// parseUint parses a base-10 unsigned 64-bit integer argument.
func parseUint(value string) (uint64, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an unsigned integer: %w", value, err)
	}
	return parsed, nil
}
