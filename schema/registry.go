package schema

import (
	"fmt"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Template)
)

// Register registers a template in the global registry
func Register(t *Template) error {
	if t == nil {
		return fmt.Errorf("cannot register nil template")
	}
	if t.Name == "" {
		return fmt.Errorf("template must have a name")
	}
	if err := t.Validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[t.Name]; exists {
		return fmt.Errorf("template %q already registered", t.Name)
	}

	registry[t.Name] = t
	return nil
}

// Lookup looks up a template by name
func Lookup(name string) *Template {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// All returns all registered templates
func All() map[string]*Template {
	mu.RLock()
	defer mu.RUnlock()

	result := make(map[string]*Template, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}
