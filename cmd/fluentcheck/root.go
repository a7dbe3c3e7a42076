package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"digital.vasic.fluent/pkg/config"
	"digital.vasic.fluent/pkg/engine"
	"digital.vasic.fluent/pkg/env"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
	"digital.vasic.fluent/pkg/plugin"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configPath string
	envFile    string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "fluentcheck",
		Short:         "run declarative fluent assertion suites",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a fluent.yaml configuration file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "path to a .env file with FLUENT_* overrides")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log passing checks and debug traces")

	cmd.AddCommand(
		newRunCommand(opts),
		newValidateCommand(opts),
		newListCommand(opts),
		newEvalCommand(opts),
	)
	return cmd
}

// settings is the resolved configuration of one invocation.
type settings struct {
	cfg    *config.Config
	loader *env.DefaultLoader
}

// load resolves the configuration: defaults, then the config
// file, then FLUENT_* variables. The render options are applied
// process-wide.
func (o *globalOptions) load() (*settings, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	loader := env.NewLoader()
	if o.envFile != "" {
		if err := loader.Load(o.envFile); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(loader); err != nil {
		return nil, errors.Wrap(err, "environment overrides")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	cfg.Apply()

	return &settings{cfg: cfg, loader: loader}, nil
}

// logger builds the configured logger writing console output to
// the command's stderr.
func (s *settings) logger(cmd *cobra.Command, verbose bool) (logging.Logger, error) {
	return s.cfg.NewLogger(cmd.ErrOrStderr(), verbose, s.loader.Secrets()...)
}

// newEngine builds an engine with the built-in plugins installed.
func newEngine(logger logging.Logger, recorder metrics.Recorder) (*engine.DefaultEngine, error) {
	e := engine.NewEngine(engine.WithLogger(logger), engine.WithRecorder(recorder))
	if err := plugin.Install(e, logger); err != nil {
		return nil, err
	}
	return e, nil
}
