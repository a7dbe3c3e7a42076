// Package plugin extends the assertion engine with additional
// check kinds.
package plugin

import (
	"sync"

	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/engine"
	"digital.vasic.fluent/pkg/logging"
)

// Plugin contributes evaluators to an engine.
type Plugin interface {
	Name() string
	Version() string
	// Init registers the plugin's evaluators with ctx.Engine.
	Init(ctx *Context) error
}

// Context is handed to every plugin during initialization.
type Context struct {
	Engine engine.Engine
	Logger logging.Logger
	Config map[string]any
}

func (c *Context) log() logging.Logger {
	if c == nil || c.Logger == nil {
		return logging.NullLogger{}
	}
	return c.Logger
}

type entry struct {
	plugin Plugin
	ready  bool
}

// Registry holds plugins in the order they were registered and
// initializes them in that order.
type Registry struct {
	mu      sync.Mutex
	entries []*entry
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) find(name string) *entry {
	for _, e := range r.entries {
		if e.plugin.Name() == name {
			return e
		}
	}
	return nil
}

// Register adds p. Names must be unique within the registry.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return errors.New("plugin cannot be nil")
	}
	if p.Name() == "" {
		return errors.New("plugin name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(p.Name()) != nil {
		return errors.Errorf("plugin %q already registered", p.Name())
	}
	r.entries = append(r.entries, &entry{plugin: p})
	return nil
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (Plugin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e := r.find(name); e != nil {
		return e.plugin, true
	}
	return nil, false
}

// Initialize runs Init on every plugin that is not ready yet and
// stops at the first failure. Plugins initialized by an earlier
// call are skipped.
func (r *Registry) Initialize(ctx *Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ready {
			continue
		}
		if err := e.plugin.Init(ctx); err != nil {
			return errors.Wrapf(err, "init plugin %q", e.plugin.Name())
		}
		e.ready = true
		ctx.log().Debug("plugin initialized",
			logging.StringField("plugin", e.plugin.Name()),
			logging.StringField("version", e.plugin.Version()),
		)
	}
	return nil
}

// Ready reports whether the named plugin has been initialized.
func (r *Registry) Ready(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.find(name)
	return e != nil && e.ready
}

// Names lists plugins in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.plugin.Name()
	}
	return names
}
