package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/engine"
	"digital.vasic.fluent/pkg/metrics"
)

type evalOptions struct {
	actual  string
	null    bool
	name    string
	because string
}

func newEvalCommand(global *globalOptions) *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval <kind.type[:expected]>",
		Short: "evaluate a single compact check against --actual",
		Example: `  fluentcheck eval string.start_with:ab --actual abc
  fluentcheck eval numeric.be_positive --actual -3 --name balance
  fluentcheck eval boolean.be_true --null`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := global.load()
			if err != nil {
				return err
			}
			logger, err := s.logger(cmd, global.verbose)
			if err != nil {
				return err
			}
			defer logger.Close()
			e, err := newEngine(logger, metrics.NoopRecorder{})
			if err != nil {
				return err
			}

			var actual any
			if !opts.null {
				if err := yaml.Unmarshal([]byte(opts.actual), &actual); err != nil {
					return errors.Wrap(err, "parse --actual")
				}
			}

			def := engine.ParseDefinition(args[0], actual)
			def.Name = opts.name
			def.Because = opts.because

			result := e.Evaluate(def)
			out := cmd.OutOrStdout()
			switch {
			case result.Error != "":
				return errors.New(result.Error)
			case result.Passed:
				fmt.Fprintln(out, "passed")
				return nil
			default:
				fmt.Fprintln(out, result.Message)
				return errors.Errorf("check %s failed", def.Key())
			}
		},
	}

	cmd.Flags().StringVarP(&opts.actual, "actual", "a", "", "the subject value, parsed as a YAML scalar or collection")
	cmd.Flags().BoolVar(&opts.null, "null", false, "use a null subject")
	cmd.Flags().StringVar(&opts.name, "name", "", "subject name used in failure messages")
	cmd.Flags().StringVar(&opts.because, "because", "", "reason appended to failure messages")
	return cmd
}
