package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"digital.vasic.fluent/pkg/bank"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
)

func newValidateCommand(_ *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <suite|dir>...",
		Short: "check suite files without evaluating them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := bank.Expand(args...)
			if err != nil {
				return err
			}

			registry, err := newEngine(logging.NullLogger{}, metrics.NoopRecorder{})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			invalid := 0
			for _, f := range files {
				errs := bank.ValidateFile(f, registry)
				if len(errs) == 0 {
					fmt.Fprintf(out, "ok      %s\n", f)
					continue
				}
				invalid++
				fmt.Fprintf(out, "invalid %s\n", f)
				for _, e := range errs {
					fmt.Fprintf(out, "    %s\n", e.Error())
				}
			}

			if invalid > 0 {
				return errors.Errorf("%d of %d suite files are invalid", invalid, len(files))
			}
			return nil
		},
	}
}
