package plugin

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"digital.vasic.fluent/pkg/assertion"
	"digital.vasic.fluent/pkg/engine"
)

// CompositePlugin adds composite.all_pass and composite.any_pass.
// Their sub-checks are listed under values, each with at least a
// kind and a type; they share the composite's actual value.
//
//	checks:
//	  - id: port
//	    kind: composite
//	    type: all_pass
//	    actual: 8080
//	    values:
//	      - {kind: numeric, type: be_positive}
//	      - {kind: numeric, type: be_less_than, expected: 65536}
type CompositePlugin struct{}

func (CompositePlugin) Name() string    { return "composite" }
func (CompositePlugin) Version() string { return "1.0.0" }

func (CompositePlugin) Init(ctx *Context) error {
	if ctx == nil || ctx.Engine == nil {
		return errors.New("composite plugin needs an engine")
	}
	e := ctx.Engine

	build := func(combine func(engine.Engine, []engine.Definition) engine.Evaluator) engine.Evaluator {
		return func(t assertion.T, d engine.Definition) error {
			sub, err := subChecks(d)
			if err != nil {
				return err
			}
			return combine(e, sub)(t, d)
		}
	}

	if err := e.Register("composite.all_pass", build(engine.CompositeAllPass)); err != nil {
		return err
	}
	return e.Register("composite.any_pass", build(engine.CompositeAnyPass))
}

// subChecks decodes the composite's values into definitions.
// Sub-checks without an id are named after their position.
func subChecks(d engine.Definition) ([]engine.Definition, error) {
	if len(d.Values) == 0 {
		return nil, errors.Wrap(engine.ErrInvalidDefinition, "values: composite needs at least one sub-check")
	}

	out := make([]engine.Definition, len(d.Values))
	for i, v := range d.Values {
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(engine.ErrInvalidDefinition, "values[%d]: %v", i, err)
		}
		var sub engine.Definition
		if err := yaml.Unmarshal(data, &sub); err != nil {
			return nil, errors.Wrapf(engine.ErrInvalidDefinition, "values[%d]: %v", i, err)
		}
		if sub.Kind == "" || sub.Type == "" {
			return nil, errors.Wrapf(engine.ErrInvalidDefinition, "values[%d]: kind and type are required", i)
		}
		if sub.ID == "" {
			sub.ID = fmt.Sprintf("%s[%d]", d.ID, i)
		}
		out[i] = sub
	}
	return out, nil
}
