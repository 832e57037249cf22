package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wikilens/wiki/internal/config"
	"github.com/wikilens/wiki/internal/core"
	"github.com/wikilens/wiki/internal/core/wikiapi"
	errwrap "github.com/wikilens/wiki/internal/errors"
	"github.com/wikilens/wiki/internal/observability"
	"github.com/wikilens/wiki/internal/output"
)

const binaryName = "wiki"

var (
	cfgFile string
	verbose bool

	// configFileUsed is the config file read by the last loadRuntime, if any.
	configFileUsed string

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   binaryName + " <command> [args]",
	Short: "Search and read Wikipedia from the command line",
	Long: `wiki queries the Wikipedia API: keyword search, page extracts by id,
and random page titles. Each invocation issues a single request.`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
	RunE:              runRoot,
}

// ExecuteContext runs the command tree with ctx as the parent context.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errwrap.WrapInvalidInput(cmd.Context(), err, "invalid flag or argument")
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/wiki/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
	rootCmd.PersistentFlags().String("api-url", wikiapi.DefaultBaseURL, "MediaWiki action API endpoint")
	rootCmd.PersistentFlags().Duration("timeout", 0, "request timeout (0 disables)")

	bindFlags()
}

// bindFlags binds global flags to their viper keys.
func bindFlags() {
	_ = viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("api.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// loadRuntime reads configuration, initializes the CLI logger and attaches a
// request id to the command context.
func loadRuntime(cmd *cobra.Command, args []string) error {
	ctx := core.WithRequestID(cmd.Context(), "")
	cmd.SetContext(ctx)

	// Usage needs no configuration, so a broken config file cannot hide it.
	if cmd == cmd.Root() {
		return nil
	}

	used, err := config.Prepare(viper.GetViper(), cfgFile)
	if err != nil {
		return errwrap.WrapConfigInvalid(ctx, err, "failed to read configuration")
	}
	configFileUsed = used

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return errwrap.WrapConfigInvalid(ctx, err, "invalid configuration")
	}

	observability.InitCLILogger(binaryName, cfg.Logging.Level, verbose)
	if used != "" {
		observability.CLILogger.Debug("Using config file", zap.String("path", used))
	}
	return nil
}

// runRoot handles invocations that matched no subcommand. Both a missing and
// an unknown command print usage and fail.
func runRoot(cmd *cobra.Command, args []string) error {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), usageText(cmd.Root()))

	if len(args) == 0 {
		return errwrap.WrapInvalidInput(cmd.Context(), errMissingCommand, "no command given")
	}
	return errwrap.WrapInvalidInput(cmd.Context(), fmt.Errorf("%w: %q", errUnknownCommand, args[0]), "unknown command")
}

// usageText lists the visible subcommands, sorted by name.
func usageText(root *cobra.Command) string {
	var commands [][2]string
	for _, sub := range root.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		commands = append(commands, [2]string{sub.Use, sub.Short})
	}
	return output.Usage(binaryName, commands)
}

// newClient builds the API client for the loaded configuration.
func newClient() (*wikiapi.Client, error) {
	cfg := config.GetConfig()
	if cfg == nil {
		return nil, errConfigNotLoaded
	}

	return &wikiapi.Client{
		BaseURL:    cfg.API.URL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		UserAgent:  cfg.API.UserAgent,
		Logger:     observability.CLILogger,
	}, nil
}
