package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wikilens/wiki/internal/config"
	errwrap "github.com/wikilens/wiki/internal/errors"
)

// envInfo is the document printed by envinfo.
type envInfo struct {
	Application struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		Commit  string `yaml:"commit"`
		Built   string `yaml:"built"`
	} `yaml:"application"`
	Runtime struct {
		GoVersion string `yaml:"go_version"`
		GOOS      string `yaml:"goos"`
		GOARCH    string `yaml:"goarch"`
	} `yaml:"runtime"`
	ConfigFile        string        `yaml:"config_file"`
	DefaultConfigFile string        `yaml:"default_config_file"`
	Config            config.Config `yaml:"config"`
}

var envInfoCmd = &cobra.Command{
	Use:   "envinfo",
	Short: "Display environment and effective configuration",
	Long:  "Display version, runtime and the effective configuration as YAML.",
	Args:  argsBetween(0, 0, "no arguments"),
	RunE:  runEnvInfo,
}

func init() {
	rootCmd.AddCommand(envInfoCmd)
}

func runEnvInfo(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	if cfg == nil {
		return errwrap.WrapConfigInvalid(cmd.Context(), errConfigNotLoaded, "configuration unavailable")
	}

	var info envInfo
	info.Application.Name = binaryName
	info.Application.Version = versionInfo.Version
	info.Application.Commit = versionInfo.Commit
	info.Application.Built = versionInfo.BuildDate
	info.Runtime.GoVersion = runtime.Version()
	info.Runtime.GOOS = runtime.GOOS
	info.Runtime.GOARCH = runtime.GOARCH
	info.ConfigFile = configFileUsed
	info.DefaultConfigFile = config.DefaultConfigPath()
	info.Config = *cfg

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(info); err != nil {
		return errwrap.WrapInternal(cmd.Context(), err, "failed to render environment info")
	}
	return encoder.Close()
}
