// Command palindromes finds the smallest and the largest palindromic products of two factors from a range.
//
// Configuration sources, highest priority first:
//  1. command-line flags (--mode, --port, etc.)
//  2. environment variables following the PALINDROMES_<SECTION>_<OPTION> pattern,
//     e.g. PALINDROMES_SEARCH_MODE, plus FUNCTIONS_CUSTOMHANDLER_PORT for the port
//  3. the config file: --config, then PALINDROMES_CONFIG_FILE, then .palindromes.yml in the current directory
//  4. defaults
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/search"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is what every subcommand needs, built once the configuration is loaded.
type app struct {
	v        *viper.Viper
	conf     *configs.AppConfig
	logger   logging.Logger
	searcher search.Searcher
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "palindromes",
		Short: "Find the smallest and the largest palindromic products of a range",
		Long: `palindromes finds the smallest and the largest palindromic numbers
that are products of two factors from an inclusive range, with every factor pair
that produces them.

  palindromes compute --min 10 --max 99        Search once and print the result
  palindromes serve                            Serve the HTTP API
  palindromes event --payload '{"min":1,"max":9}'  Answer a serverless event`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cfgFile)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .palindromes.yml, can also use PALINDROMES_CONFIG_FILE env var)")
	flags.String("mode", configs.SearchModeSequential, "search mode (sequential, parallel, pipeline)")
	flags.Int("workers", 0, "goroutines of the parallel and pipeline modes, 0 means one per CPU")
	flags.Duration("timeout", 0, "timeout of a single search, 0 means no timeout")
	flags.StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", configs.LogFormatConsole, "log format (console, json, none)")

	_ = v.BindPFlag("search.mode", flags.Lookup("mode"))
	_ = v.BindPFlag("search.workers", flags.Lookup("workers"))
	_ = v.BindPFlag("search.timeout", flags.Lookup("timeout"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(newComputeCmd(a), newServeCmd(a), newEventCmd(a))
	return rootCmd
}

// setup reads the configuration and builds the logger and the searcher.
func (a *app) setup(cmd *cobra.Command, cfgFile string) error {
	explicit := true
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(configs.EnvPrefix + "_CONFIG_FILE"); envConfigFile != "" {
		a.v.SetConfigFile(envConfigFile)
	} else {
		explicit = false
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".palindromes")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	conf, err := configs.Load(a.v)
	if err != nil {
		return err
	}
	a.conf = conf

	// logs go to stderr, stdout is for the results
	logger, err := conf.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file " + used)
	}

	a.searcher, err = search.New(conf.Search, logger)
	return err
}

func (a *app) close() error {
	if a.logger == nil {
		return nil
	}
	return a.logger.Close()
}
