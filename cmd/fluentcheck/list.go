package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"digital.vasic.fluent/pkg/bank"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
)

func newListCommand(_ *globalOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list [suite|dir]...",
		Short: "list suites, or the available operations when no path is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				e, err := newEngine(logging.NullLogger{}, metrics.NoopRecorder{})
				if err != nil {
					return err
				}
				for _, key := range e.Keys() {
					if kind == "" || strings.HasPrefix(key, kind+".") {
						fmt.Fprintln(out, key)
					}
				}
				return nil
			}

			b := bank.New()
			if err := b.Load(args...); err != nil {
				return err
			}

			if kind != "" {
				for _, def := range b.ByKind(kind) {
					fmt.Fprintf(out, "%s/%s\t%s\n", def.Suite, def.ID, def.Key())
				}
				return nil
			}

			for _, s := range b.All() {
				fmt.Fprintf(out, "%s\t%d checks\t%s\n", s.Name, len(s.Checks), s.Source)
			}
			fmt.Fprintf(out, "%d suites, %d checks\n", b.Count(), b.CheckCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only show this kind, e.g. string or datetime")
	return cmd
}
