package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"digital.vasic.fluent/pkg/bank"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
	"digital.vasic.fluent/pkg/report"
	"digital.vasic.fluent/pkg/runner"
)

type runOptions struct {
	reportJSON string
	reportHTML string
	reportDir  string
	history    string
	metricsOut string
	timeout    time.Duration
	parallel   int
	failFast   bool
	noColor    bool
}

func newRunCommand(global *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <suite|dir>...",
		Short: "evaluate every check of the given suite files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.reportJSON, "report-json", "", "write a JSON summary of the run to this file")
	cmd.Flags().StringVar(&opts.reportHTML, "report-html", "", "write an HTML summary of the run to this file")
	cmd.Flags().StringVar(&opts.reportDir, "report-dir", "", "save JSON and Markdown summaries into this directory")
	cmd.Flags().StringVar(&opts.history, "history", "", "append one JSON line per suite to this file")
	cmd.Flags().StringVar(&opts.metricsOut, "metrics-out", "", "write Prometheus metrics in text format to this file")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "per-suite timeout, 0 for none")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 0, "suites to run concurrently (overrides runner.parallel)")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop a suite at its first failing check")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func runSuites(cmd *cobra.Command, global *globalOptions, opts *runOptions, args []string) (err error) {
	s, err := global.load()
	if err != nil {
		return err
	}

	logger, err := s.logger(cmd, global.verbose)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := logger.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close logger")
		}
	}()

	metricsOut := opts.metricsOut
	if metricsOut == "" {
		metricsOut = s.cfg.Metrics.Textfile
	}
	var (
		recorder metrics.Recorder = metrics.NoopRecorder{}
		prom     *metrics.PrometheusRecorder
	)
	if s.cfg.Metrics.Enabled || metricsOut != "" {
		prom = metrics.NewPrometheusRecorder()
		recorder = prom
	}

	b := bank.New()
	if err := b.Load(args...); err != nil {
		return err
	}
	logger.Info("suites loaded",
		logging.IntField("suites", b.Count()),
		logging.IntField("checks", b.CheckCount()),
	)

	eng, err := newEngine(logger, recorder)
	if err != nil {
		return err
	}
	r := runner.NewRunner(
		runner.WithEngine(eng),
		runner.WithLogger(logger),
		runner.WithRecorder(recorder),
		runner.WithTimeout(opts.timeout),
		runner.WithFailFast(opts.failFast || s.cfg.Runner.FailFast),
	)

	parallel := s.cfg.Runner.Parallel
	if opts.parallel > 0 {
		parallel = opts.parallel
	}
	results := r.RunParallel(cmd.Context(), b.All(), parallel)

	text, err := report.NewTextReporter(!opts.noColor).GenerateMasterSummary(results)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(text); err != nil {
		return err
	}

	if err := writeOutputs(opts, results); err != nil {
		return err
	}
	if prom != nil && metricsOut != "" {
		if err := prom.WriteTextfile(metricsOut); err != nil {
			return err
		}
	}

	failed := 0
	for _, res := range results {
		if !res.OK() {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d suites did not pass", failed, len(results))
	}
	return nil
}

// writeOutputs writes every requested report and reports all
// failures together.
func writeOutputs(opts *runOptions, results []*runner.SuiteResult) error {
	var result *multierror.Error

	if opts.reportJSON != "" {
		data, err := report.NewJSONReporter(true).GenerateMasterSummary(results)
		if err == nil {
			err = writeReportFile(opts.reportJSON, data)
		}
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if opts.reportHTML != "" {
		data, err := report.NewHTMLReporter().GenerateMasterSummary(results)
		if err == nil {
			err = writeReportFile(opts.reportHTML, data)
		}
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if opts.reportDir != "" {
		if err := report.SaveMasterSummary(report.BuildMasterSummary(results), opts.reportDir); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if opts.history != "" {
		for _, res := range results {
			if err := report.AppendToHistory(opts.history, res); err != nil {
				result = multierror.Append(result, err)
				break
			}
		}
	}

	return result.ErrorOrNil()
}

func writeReportFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "create report directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write report %s", path)
}
