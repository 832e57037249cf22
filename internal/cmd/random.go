package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wikilens/wiki/internal/core"
	errwrap "github.com/wikilens/wiki/internal/errors"
	"github.com/wikilens/wiki/internal/observability"
	"github.com/wikilens/wiki/internal/output"
)

const defaultRandomCount uint64 = 1

var randomCmd = &cobra.Command{
	Use:   "random [n]",
	Short: "Print n random page titles (default 1)",
	Long:  `Print "<title> (<id>)" for n random articles from the main namespace.`,
	Args:  argsBetween(0, 1, "a page count"),
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	count := defaultRandomCount
	if len(args) == 1 {
		parsed, err := parseUint(args[0])
		if err != nil {
			return errwrap.WrapInvalidInput(ctx, err, "invalid page count")
		}
		if parsed == 0 {
			return errwrap.WrapInvalidInput(ctx, errors.New("count must be at least 1"), "invalid page count")
		}
		count = parsed
	}

	client, err := newClient()
	if err != nil {
		return errwrap.WrapConfigInvalid(ctx, err, "api client unavailable")
	}

	pages, err := client.Random(ctx, count)
	if err != nil {
		return apiFailure(ctx, core.OperationRandom, err)
	}

	observability.CLILogger.Debug("Random pages fetched",
		zap.Uint64("requested", count),
		zap.Int("returned", len(pages)))

	return output.WriteRandomPages(cmd.OutOrStdout(), pages)
}
