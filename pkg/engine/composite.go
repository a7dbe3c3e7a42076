package engine

import (
	"fmt"

	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/render"
)

// AllPassComposite evaluates every definition and passes only
// if all of them pass. The first failure becomes the message.
func AllPassComposite(engine Engine, defs []Definition) Result {
	results := engine.EvaluateAll(defs)

	for _, r := range results {
		if r.Error != "" {
			return Result{
				Kind:  "composite",
				Type:  "all_pass",
				Error: fmt.Sprintf("check '%s' (%s.%s): %s", r.ID, r.Kind, r.Type, r.Error),
			}
		}
		if !r.Passed {
			return Result{
				Kind:    "composite",
				Type:    "all_pass",
				Passed:  false,
				Message: fmt.Sprintf("check '%s' (%s.%s) failed: %s", r.ID, r.Kind, r.Type, r.Message),
			}
		}
	}

	return Result{
		Kind:   "composite",
		Type:   "all_pass",
		Passed: true,
	}
}

// AnyPassComposite evaluates the definitions and passes if at
// least one of them passes.
func AnyPassComposite(engine Engine, defs []Definition) Result {
	results := engine.EvaluateAll(defs)

	for _, r := range results {
		if r.Passed {
			return Result{
				Kind:   "composite",
				Type:   "any_pass",
				Passed: true,
			}
		}
	}

	return Result{
		Kind:    "composite",
		Type:    "any_pass",
		Passed:  false,
		Message: fmt.Sprintf("none of %d checks passed", len(results)),
	}
}

// CompositeAllPass returns an Evaluator that runs a fixed set
// of sub-checks against the composite's actual value and
// requires all of them to pass.
func CompositeAllPass(engine Engine, sub []Definition) Evaluator {
	return func(t assertion.T, d Definition) error {
		r := AllPassComposite(engine, withActual(sub, d))
		if r.Error != "" {
			return errors.Wrap(ErrInvalidDefinition, r.Error)
		}
		assertion.New(t, subjectName(d)).
			BecauseOf(d.Because, d.BecauseArgs...).
			ForCondition(r.Passed).
			FailWith("Expected {subjectName} to satisfy all of {0} checks{reason}, but {1}",
				len(sub), render.Raw(r.Message))
		return nil
	}
}

// CompositeAnyPass returns an Evaluator that runs a fixed set
// of sub-checks and requires at least one of them to pass.
func CompositeAnyPass(engine Engine, sub []Definition) Evaluator {
	return func(t assertion.T, d Definition) error {
		r := AnyPassComposite(engine, withActual(sub, d))
		assertion.New(t, subjectName(d)).
			BecauseOf(d.Because, d.BecauseArgs...).
			ForCondition(r.Passed).
			FailWith("Expected {subjectName} to satisfy any of {0} checks{reason}, but none did.", len(sub))
		return nil
	}
}

func withActual(sub []Definition, d Definition) []Definition {
	out := make([]Definition, len(sub))
	for i, s := range sub {
		s.Actual = d.Actual
		s.Suite = d.Suite
		if s.Name == "" {
			s.Name = d.Name
		}
		out[i] = s
	}
	return out
}

func subjectName(d Definition) string {
	if d.Name != "" {
		return d.Name
	}
	return "value"
}
