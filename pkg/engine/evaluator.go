package engine

import "digital.vasic.fluent/pkg/assertion"

// Evaluator runs one check against t. Failures are reported
// through t; the returned error reports definitions that cannot
// be evaluated.
type Evaluator func(t assertion.T, d Definition) error
