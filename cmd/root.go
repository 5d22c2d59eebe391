// Package cmd implements the CLI commands for webcite using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/webcite/config"
	"github.com/gaurav-prasanna/webcite/core/cite"
	"github.com/gaurav-prasanna/webcite/core/extract"
	"github.com/gaurav-prasanna/webcite/core/fetch"
	"github.com/gaurav-prasanna/webcite/core/format"
	"github.com/gaurav-prasanna/webcite/logging"
)

// Global state shared by subcommands, filled in by PersistentPreRunE.
var (
	flagConfig string

	v      = viper.New()
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "webcite",
	Short: "webcite — build a bibliographic citation for a web page",
	Long: `webcite fetches a web page, extracts its title, author, publication date
and site name, and formats an electronic-resource citation.

Usage:
  webcite cite <url> [flags]
  webcite serve [flags]`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, flagConfig)
		if err != nil {
			return err
		}
		l, err := logging.New(c.Log.Level, c.Log.Format)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (YAML, TOML or JSON)")
	pf.String("log_level", "info", "Log level: debug, info, warn, error")
	pf.String("log_format", "console", "Log format: console or json")

	bindFlag("log.level", pf.Lookup("log_level"))
	bindFlag("log.format", pf.Lookup("log_format"))
}

// bindFlag ties a config key to a flag. Keys and flags are static, so a
// failure is a programming error.
func bindFlag(key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

// newPipeline builds the fetch → extract → format pipeline from the loaded config.
func newPipeline() *cite.Pipeline {
	opts := cfg.FetchOptions()
	opts.Logger = logger
	return cite.New(fetch.New(opts), extract.New(), format.New(), logger)
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
