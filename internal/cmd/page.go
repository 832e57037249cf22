package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wikilens/wiki/internal/core"
	errwrap "github.com/wikilens/wiki/internal/errors"
	"github.com/wikilens/wiki/internal/observability"
	"github.com/wikilens/wiki/internal/output"
)

var pageCmd = &cobra.Command{
	Use:   "page <id>",
	Short: "Print the plaintext extract of a page",
	Long: `Print the plaintext extract of the page with the given numeric page id.

Page ids are printed by "wiki search" and "wiki random".`,
	Args: argsBetween(1, 1, "a page id"),
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pageID, err := parseUint(args[0])
	if err != nil {
		return errwrap.WrapInvalidInput(ctx, err, "invalid page id")
	}

	client, err := newClient()
	if err != nil {
		return errwrap.WrapConfigInvalid(ctx, err, "api client unavailable")
	}

	page, err := client.Page(ctx, pageID)
	if err != nil {
		return apiFailure(ctx, core.OperationPage, err)
	}

	observability.CLILogger.Debug("Page fetched",
		zap.Uint64("pageid", page.PageID),
		zap.String("title", page.Title),
		zap.Int("chars", len(page.Extract)))

	return output.WriteExtract(cmd.OutOrStdout(), page)
}
