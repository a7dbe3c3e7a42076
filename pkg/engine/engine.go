package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/logging"
	"digital.vasic.fluent/pkg/metrics"
)

// Engine defines the interface for check evaluation engines.
type Engine interface {
	// Evaluate runs a single check.
	Evaluate(d Definition) Result

	// EvaluateAll runs the checks in order.
	EvaluateAll(defs []Definition) []Result

	// Register adds a custom evaluator under "kind.type".
	// Returns an error if the key is already registered.
	Register(key string, evaluator Evaluator) error
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
	logger     logging.Logger
	recorder   metrics.Recorder
}

// Option configures a DefaultEngine.
type Option func(*DefaultEngine)

// WithLogger routes failures and debug output to l.
func WithLogger(l logging.Logger) Option {
	return func(e *DefaultEngine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecorder records every evaluated check on r.
func WithRecorder(r metrics.Recorder) Option {
	return func(e *DefaultEngine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEngine creates a DefaultEngine with every built-in
// evaluator pre-registered.
func NewEngine(opts ...Option) *DefaultEngine {
	e := &DefaultEngine{
		evaluators: make(map[string]Evaluator),
		logger:     logging.NullLogger{},
		recorder:   metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerDefaults()
	return e
}

// Register adds a custom evaluator for the given key.
// Returns an error if the key is already registered.
func (e *DefaultEngine) Register(key string, evaluator Evaluator) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.evaluators[key]; exists {
		return errors.Errorf("assertion type already registered: %s", key)
	}

	e.evaluators[key] = evaluator
	return nil
}

// HasEvaluator returns true if the given key has a registered
// evaluator.
func (e *DefaultEngine) HasEvaluator(key string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.evaluators[key]
	return exists
}

// Keys returns every registered key in sorted order.
func (e *DefaultEngine) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	keys := make([]string, 0, len(e.evaluators))
	for k := range e.evaluators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Evaluate runs a single check.
func (e *DefaultEngine) Evaluate(d Definition) Result {
	e.mu.RLock()
	evaluator, exists := e.evaluators[d.Key()]
	e.mu.RUnlock()

	result := Result{
		ID:       d.ID,
		Kind:     d.Kind,
		Type:     d.Type,
		Name:     d.Name,
		Expected: d.Expected,
		Actual:   d.Actual,
	}

	if !exists {
		result.Error = fmt.Sprintf("unknown assertion type: %s", d.Key())
		e.finish(d, &result)
		return result
	}

	start := time.Now()
	failure, err := run(evaluator, d)
	result.Duration = time.Since(start)

	switch {
	case err != nil:
		result.Error = err.Error()
	case failure != nil:
		result.Message = failure.Message
	default:
		result.Passed = true
	}

	e.finish(d, &result)
	return result
}

func (e *DefaultEngine) finish(d Definition, r *Result) {
	e.recorder.RecordAssertion(d.Kind, d.Type, r.Passed)

	if r.Passed {
		e.logger.Debug("check passed",
			logging.CheckField(d.ID),
			logging.KindField(d.Key()),
		)
		return
	}

	message := r.Message
	if r.Error != "" {
		message = r.Error
	}
	e.logger.LogFailure(logging.FailureRecord{
		Timestamp:  time.Now().Format(time.RFC3339Nano),
		Suite:      d.Suite,
		CheckID:    d.ID,
		Kind:       d.Kind,
		Operation:  d.Type,
		Subject:    d.Name,
		Message:    message,
		DurationMs: r.Duration.Milliseconds(),
	})
}

// EvaluateAll runs the checks in order and returns one result
// per check.
func (e *DefaultEngine) EvaluateAll(defs []Definition) []Result {
	results := make([]Result, 0, len(defs))
	for _, d := range defs {
		results = append(results, e.Evaluate(d))
	}
	return results
}

// run invokes the evaluator without a test handle, so failures
// surface as *assertion.Failure panics that are recovered here
// along with usage errors.
func run(evaluator Evaluator, d Definition) (failure *assertion.Failure, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch v := r.(type) {
		case *assertion.Failure:
			failure = v
		case *assertion.ArgumentError:
			err = v
		case *assertion.UnsupportedError:
			err = v
		default:
			err = errors.Errorf("evaluator for %s panicked: %v", d.Key(), r)
		}
	}()

	return nil, evaluator(nil, d)
}
