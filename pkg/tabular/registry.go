package tabular

import (
	"fmt"
	"sort"
	"sync"
)

var (
	dialectsMu sync.RWMutex
	dialects   = map[string]Dialect{
		"default":    Default(),
		"whitespace": Whitespace(),
	}
)

// RegisterDialect makes a dialect available to NewReaderNamed and
// LookupDialect under the given name, replacing any previous registration.
// The dialect is validated before it is registered.
func RegisterDialect(name string, d Dialect) error {
	if err := d.Validate(); err != nil {
		return err
	}
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[name] = d
	return nil
}

// LookupDialect resolves a registered dialect by name. Unknown names are
// reported as ErrUnknownDialect.
func LookupDialect(name string) (Dialect, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return d, nil
}

// DialectNames returns the names of all registered dialects, sorted.
func DialectNames() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
