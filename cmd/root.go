// Package cmd provides the tailblocks command-line interface.
//
// Configuration comes from one YAML file (--config, else the file named by
// TAILBLOCKS_CONFIG_FILE, else .tailblocks.yml in the working directory).
// TAILBLOCKS_<SECTION>_<OPTION> environment variables override the file and
// flags override both.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/tailblocks/internal/catalog"
	"github.com/conneroisu/tailblocks/internal/config"
	uierrors "github.com/conneroisu/tailblocks/internal/errors"
	"github.com/conneroisu/tailblocks/internal/fixtures"
	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/internal/renderer"
)

var (
	cfgFile string

	// configErr holds a config file read failure until a command needs the
	// configuration.
	configErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tailblocks",
	Short: "Tailwind and Stimulus UI components for templ",
	Long: `tailblocks is a catalog of accessible UI components rendered with templ,
styled with Tailwind classes and driven by Stimulus controllers.

Quick Start:
  tailblocks list                      List the component catalog
  tailblocks render button --text Go   Render one component to stdout
  tailblocks serve                     Browse every example with live reload
  tailblocks verify                    Compare examples with golden snapshots
  tailblocks merge "px-2 px-4"         Resolve conflicting Tailwind classes`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .tailblocks.yml, can also use TAILBLOCKS_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level (debug, info, warn, error)")
}

// initConfig points viper at the config file and environment and binds the
// flags of every command to their configuration keys.
func initConfig() {
	v := viper.GetViper()
	envFile := os.Getenv(config.ConfigFileEnv)
	config.Setup(v, cfgFile, envFile)
	bindFlags(v)

	configErr = nil
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || envFile != "" || !errors.As(err, &notFound) {
			configErr = uierrors.NewConfigError(uierrors.ErrCodeConfigInvalid, "read config file: "+err.Error())
		}
	}
}

func bindFlags(v *viper.Viper) {
	bind := func(key string, cmd *cobra.Command, flag string) {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
	bind("log.level", rootCmd, "log-level")
	bind("server.port", serveCmd, "port")
	bind("server.host", serveCmd, "host")
	bind("snapshots.dir", verifyCmd, "dir")
	bind("merge.prefix", mergeCmd, "prefix")
}

// app is what every command works with: the configuration, a logger and the
// component registry populated with built-in and project fixtures.
type app struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *registry.ComponentRegistry
	loader   *fixtures.Loader
	renderer *renderer.ComponentRenderer
	// fixtureErrs collects project fixtures that failed to load.
	fixtureErrs *uierrors.ErrorCollector
}

func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func bootstrap(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc).WithComponent("cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reg := catalog.New()
	loader := fixtures.NewLoader(reg, logger, cfg.Components.ExcludePatterns)
	if _, collector := loader.LoadFS(ctx, catalog.Fixtures(), ".", "builtin"); collector.HasErrors() {
		return nil, fmt.Errorf("built-in fixtures: %w", collector.Err())
	}

	fixtureErrs := uierrors.NewErrorCollector()
	for _, dir := range cfg.Components.FixturePaths {
		n, collector := loader.LoadDir(ctx, dir)
		for _, err := range collector.GetAllErrors() {
			logger.Warn(ctx, err, "fixture problem", "path", dir)
			fixtureErrs.AddError(err)
		}
		logger.Debug(ctx, "loaded fixtures", "path", dir, "examples", n)
	}

	return &app{
		cfg:         cfg,
		logger:      logger,
		registry:    reg,
		loader:      loader,
		renderer:    renderer.NewComponentRenderer(reg, logger),
		fixtureErrs: fixtureErrs,
	}, nil
}
