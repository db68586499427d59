package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/golinq/config"
	"github.com/kbukum/golinq/logger"
	"github.com/kbukum/golinq/operator"
)

const serviceName = "linq"

// RootOptions holds global flags and the configuration they resolve to.
type RootOptions struct {
	ConfigFile string
	LogLevel   string

	cfg  config.Config
	mode operator.SequenceEqualMode
	log  *logger.Logger
}

// NewRootCommand creates the root command for the linq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "linq",
		Short: "Evaluate deferred query plans",
		Long: `linq runs declarative query plans over lists of elements.

Plans are YAML or JSON documents naming operators in execution order.
They can be evaluated once from files (run) or served over HTTP (serve).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a config file (default: search ./config.yml and friends)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "override logging.level (debug|info|warn|error)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// load reads configuration, applies flag overrides and sets up logging.
func (o *RootOptions) load() error {
	var loaderOpts []config.LoaderOption
	if o.ConfigFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(o.ConfigFile))
	}
	if err := config.LoadConfig(serviceName, &o.cfg, loaderOpts...); err != nil {
		return err
	}
	if o.LogLevel != "" {
		o.cfg.Logging.Level = o.LogLevel
	}
	// stdout carries results.
	if o.cfg.Logging.Output == "" {
		o.cfg.Logging.Output = "stderr"
	}
	o.cfg.ApplyDefaults()
	if err := o.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	mode, err := o.cfg.Engine.SequenceEqualMode()
	if err != nil {
		return err
	}
	o.mode = mode

	logger.Init(o.cfg.Logging, o.cfg.Name)
	o.log = logger.GetGlobalLogger()
	return nil
}
