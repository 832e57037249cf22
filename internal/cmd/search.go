package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wikilens/wiki/internal/core"
	errwrap "github.com/wikilens/wiki/internal/errors"
	"github.com/wikilens/wiki/internal/observability"
	"github.com/wikilens/wiki/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search Wikipedia for a term",
	Long: `Search Wikipedia and print "<title> (<pageid>)" for each hit, in relevance order.

Multiple arguments are joined with spaces into one term. Put terms that
start with "-" after "--" so they are not read as flags.

Examples:
  wiki search golang
  wiki search "rock & roll"
  wiki search -- -1`,
	Args: argsBetween(1, -1, "a search term"),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	term := strings.Join(args, " ")
	if strings.TrimSpace(term) == "" {
		return errwrap.WrapInvalidInput(ctx, errors.New("empty search term"), "search requires a non-empty term")
	}

	client, err := newClient()
	if err != nil {
		return errwrap.WrapConfigInvalid(ctx, err, "api client unavailable")
	}

	results, err := client.Search(ctx, term)
	if err != nil {
		return apiFailure(ctx, core.OperationSearch, err)
	}

	observability.CLILogger.Debug("Search complete",
		zap.String("term", term),
		zap.Int("results", len(results)))

	return output.WriteSearchResults(cmd.OutOrStdout(), results)
}
