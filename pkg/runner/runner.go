// Package runner executes bank suites through the assertion
// engine. It supports sequential and parallel execution with
// per-suite timeouts and lifecycle hooks.
package runner

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/bank"
	"digital.vasic.fluent/pkg/engine"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
)

// Runner defines the interface for suite execution.
type Runner interface {
	// Run executes a single suite.
	Run(ctx context.Context, suite *bank.Suite) *SuiteResult

	// RunAll executes the suites in order.
	RunAll(ctx context.Context, suites []*bank.Suite) []*SuiteResult

	// RunParallel executes the suites concurrently with the
	// given concurrency limit.
	RunParallel(
		ctx context.Context,
		suites []*bank.Suite,
		maxConcurrency int,
	) []*SuiteResult
}

// Hook is invoked before a suite runs. An error marks the suite
// as errored without evaluating any check.
type Hook func(ctx context.Context, suite *bank.Suite) error

// PostHook is invoked with the finished result. Errors are logged
// as warnings.
type PostHook func(ctx context.Context, suite *bank.Suite, result *SuiteResult) error

// DefaultRunner is the standard Runner implementation.
type DefaultRunner struct {
	engine    engine.Engine
	logger    logging.Logger
	recorder  metrics.Recorder
	timeout   time.Duration
	failFast  bool
	preHooks  []Hook
	postHooks []PostHook
	active    atomic.Int32
}

// NewRunner creates a DefaultRunner with the supplied options.
func NewRunner(opts ...RunnerOption) *DefaultRunner {
	r := &DefaultRunner{
		logger:   logging.NullLogger{},
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = engine.NewEngine(
			engine.WithLogger(r.logger),
			engine.WithRecorder(r.recorder),
		)
	}
	return r
}

// Run executes a single suite.
func (r *DefaultRunner) Run(ctx context.Context, suite *bank.Suite) *SuiteResult {
	return r.executeSuite(ctx, suite)
}

// RunAll executes the suites one after another. Once ctx is done
// the remaining suites are reported as cancelled.
func (r *DefaultRunner) RunAll(ctx context.Context, suites []*bank.Suite) []*SuiteResult {
	results := make([]*SuiteResult, 0, len(suites))
	for _, s := range suites {
		results = append(results, r.executeSuite(ctx, s))
	}
	return results
}

// RunParallel executes the suites concurrently using at most
// maxConcurrency goroutines.
func (r *DefaultRunner) RunParallel(
	ctx context.Context,
	suites []*bank.Suite,
	maxConcurrency int,
) []*SuiteResult {
	return runParallel(ctx, r, suites, maxConcurrency)
}

// executeSuite runs a suite through its lifecycle: pre-hooks ->
// checks under the timeout -> metrics -> post-hooks.
func (r *DefaultRunner) executeSuite(ctx context.Context, suite *bank.Suite) *SuiteResult {
	result := &SuiteResult{
		Suite:     suite.Name,
		Source:    suite.Source,
		StartTime: time.Now(),
		Results:   make([]engine.Result, 0, len(suite.Checks)),
	}
	log := r.logger.WithFields(logging.SuiteField(suite.Name))

	r.recorder.SetActiveSuites(int(r.active.Add(1)))
	defer func() {
		r.recorder.SetActiveSuites(int(r.active.Add(-1)))
	}()

	if err := ctx.Err(); err != nil {
		result.Status = StatusCancelled
		result.Error = err.Error()
		result.Skipped = len(suite.Checks)
		result.settle()
		return result
	}

	log.Info("suite_started", logging.IntField("checks", len(suite.Checks)))

	for _, hook := range r.preHooks {
		if err := hook(ctx, suite); err != nil {
			result.Status = StatusError
			result.Error = errors.Wrap(err, "pre-hook failed").Error()
			result.Skipped = len(suite.Checks)
			result.settle()
			log.Error("suite_error", logging.StringField("error", result.Error))
			return result
		}
	}

	execCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	for i, def := range suite.Checks {
		if err := execCtx.Err(); err != nil {
			result.Skipped = len(suite.Checks) - i
			if errors.Is(err, context.DeadlineExceeded) {
				result.Status = StatusTimedOut
				result.Error = "suite execution timed out"
			} else {
				result.Status = StatusCancelled
				result.Error = err.Error()
			}
			break
		}

		res := r.engine.Evaluate(def)
		result.add(res)

		if r.failFast && !res.Passed {
			result.Skipped = len(suite.Checks) - i - 1
			break
		}
	}

	result.settle()
	r.recorder.RecordSuite(suite.Name, result.Passed, result.Failed+result.Errored, result.Duration)

	for _, hook := range r.postHooks {
		if err := hook(ctx, suite, result); err != nil {
			log.Warn("post_hook_warning", logging.ErrorField(err))
		}
	}

	fields := []logging.Field{
		logging.StringField("status", result.Status),
		logging.IntField("passed", result.Passed),
		logging.IntField("failed", result.Failed),
		logging.IntField("errored", result.Errored),
		logging.IntField("skipped", result.Skipped),
		logging.DurationField("duration_ms", result.Duration),
	}
	if result.OK() {
		log.Info("suite_completed", fields...)
	} else {
		log.Warn("suite_completed", fields...)
	}

	return result
}
