package plugin

import (
	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/engine"
	"digital.vasic.fluent/pkg/logging"
)

// Builtins returns the plugins shipped with the module.
func Builtins() []Plugin {
	return []Plugin{CompositePlugin{}}
}

// Install registers the built-in plugins followed by extra and
// initializes them all against e.
func Install(e engine.Engine, logger logging.Logger, extra ...Plugin) error {
	r := NewRegistry()
	for _, p := range append(Builtins(), extra...) {
		if err := r.Register(p); err != nil {
			return errors.Wrap(err, "install plugins")
		}
	}
	return r.Initialize(&Context{Engine: e, Logger: logger})
}
