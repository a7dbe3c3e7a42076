package runner

import (
	"time"

	"digital.vasic.fluent/pkg/engine"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
)

// RunnerOption configures a DefaultRunner.
type RunnerOption func(*DefaultRunner)

// WithEngine sets the engine that evaluates checks.
func WithEngine(e engine.Engine) RunnerOption {
	return func(r *DefaultRunner) {
		r.engine = e
	}
}

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *DefaultRunner) {
		r.logger = logger
	}
}

// WithRecorder sets the metrics recorder for suite outcomes.
func WithRecorder(rec metrics.Recorder) RunnerOption {
	return func(r *DefaultRunner) {
		r.recorder = rec
	}
}

// WithTimeout bounds the run time of each suite. Zero disables
// the bound.
func WithTimeout(timeout time.Duration) RunnerOption {
	return func(r *DefaultRunner) {
		r.timeout = timeout
	}
}

// WithFailFast stops a suite at its first check that does not
// pass. The remaining checks are counted as skipped.
func WithFailFast(failFast bool) RunnerOption {
	return func(r *DefaultRunner) {
		r.failFast = failFast
	}
}

// WithPreHook adds a hook that runs before each suite.
func WithPreHook(h Hook) RunnerOption {
	return func(r *DefaultRunner) {
		r.preHooks = append(r.preHooks, h)
	}
}

// WithPostHook adds a hook that runs after each suite.
func WithPostHook(h PostHook) RunnerOption {
	return func(r *DefaultRunner) {
		r.postHooks = append(r.postHooks, h)
	}
}
