package bank

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"digital.vasic.fluent/pkg/engine"
)

// Suite is a named, ordered list of checks loaded from one file.
type Suite struct {
	Name        string
	Description string
	Source      string
	Checks      []engine.Definition
}

// Bank manages suites loaded from files.
type Bank struct {
	mu      sync.RWMutex
	suites  map[string]*Suite
	sources []string
}

// New creates a new empty Bank.
func New() *Bank {
	return &Bank{
		suites: make(map[string]*Suite),
	}
}

// LoadFile loads one suite file. A suite without a name is named
// after its file.
func (b *Bank) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read suite file %s", path)
	}

	file, err := Decode(path, data)
	if err != nil {
		return err
	}

	name := file.Name
	if name == "" {
		base := filepath.Base(path)
		name = base[:len(base)-len(filepath.Ext(base))]
	}

	checks := make([]engine.Definition, len(file.Checks))
	for i, def := range file.Checks {
		if def.ID == "" {
			return errors.Errorf("check at index %d in %s has no ID", i, path)
		}
		def.Suite = name
		checks[i] = def
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.suites[name]; ok {
		return errors.Errorf("suite %q in %s already loaded from %s", name, path, existing.Source)
	}
	b.suites[name] = &Suite{
		Name:        name,
		Description: file.Description,
		Source:      path,
		Checks:      checks,
	}
	b.sources = append(b.sources, path)
	return nil
}

// LoadDir loads every suite file of a directory in name order.
func (b *Bank) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "read suite directory %s", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || !IsSuiteFile(entry.Name()) {
			continue
		}
		if err := b.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Load loads each path, which may be a file or a directory.
func (b *Bank) Load(paths ...string) error {
	files, err := Expand(paths...)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := b.LoadFile(f); err != nil {
			return err
		}
	}
	return nil
}

// Expand resolves files and directories into suite file paths.
// Directories contribute their suite files in name order; files
// are kept as given whatever their extension.
func Expand(paths ...string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", path)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read suite directory %s", path)
		}
		for _, entry := range entries {
			if !entry.IsDir() && IsSuiteFile(entry.Name()) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
	}
	return files, nil
}

// Get retrieves a suite by name.
func (b *Bank) Get(name string) (*Suite, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.suites[name]
	return s, ok
}

// All returns all loaded suites ordered by name.
func (b *Bank) All() []*Suite {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]*Suite, 0, len(b.suites))
	for _, s := range b.suites {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ByKind returns the checks of every suite with the given kind.
func (b *Bank) ByKind(kind string) []engine.Definition {
	var result []engine.Definition
	for _, s := range b.All() {
		for _, def := range s.Checks {
			if def.Kind == kind {
				result = append(result, def)
			}
		}
	}
	return result
}

// Count returns the number of loaded suites.
func (b *Bank) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.suites)
}

// CheckCount returns the number of checks over all suites.
func (b *Bank) CheckCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	n := 0
	for _, s := range b.suites {
		n += len(s.Checks)
	}
	return n
}

// Sources returns the list of loaded file paths.
func (b *Bank) Sources() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	result := make([]string, len(b.sources))
	copy(result, b.sources)
	return result
}
