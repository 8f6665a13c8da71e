package forms

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-loandocs/pkg/canonical"
)

// Registry stores adapters by form type, providing discovery and duplication
// safeguards. The zero configuration from NewRegistry ships the three
// built-in adapters; callers can layer additional form types on top.
type Registry struct {
	mu       sync.RWMutex
	adapters map[FormType]Adapter
}

// NewRegistry creates a registry preloaded with the built-in adapters.
func NewRegistry() *Registry {
	r := &Registry{
		adapters: make(map[FormType]Adapter),
	}
	r.MustRegister(ShortApplicationAdapter{})
	r.MustRegister(URLAAdapter{})
	r.MustRegister(CustomerPortalAdapter{})
	return r
}

// NewEmptyRegistry creates a registry with no adapters registered.
func NewEmptyRegistry() *Registry {
	return &Registry{
		adapters: make(map[FormType]Adapter),
	}
}

// Register adds an adapter keyed by its FormType(). Duplicate form types
// return an error.
func (r *Registry) Register(adapter Adapter) error {
	if adapter == nil {
		return fmt.Errorf("forms: adapter is required")
	}
	formType := adapter.FormType()
	if formType == "" {
		return fmt.Errorf("forms: adapter form type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[formType]; exists {
		return fmt.Errorf("forms: adapter %q already registered", formType)
	}

	r.adapters[formType] = adapter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(adapter Adapter) {
	if err := r.Register(adapter); err != nil {
		panic(err)
	}
}

// Get retrieves the adapter for a form type and reports whether one exists.
func (r *Registry) Get(formType FormType) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[formType]
	return adapter, ok
}

// Has reports whether an adapter is registered for the form type.
func (r *Registry) Has(formType FormType) bool {
	_, ok := r.Get(formType)
	return ok
}

// List returns the registered form types in sorted order.
func (r *Registry) List() []FormType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]FormType, 0, len(r.adapters))
	for formType := range r.adapters {
		types = append(types, formType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Extract dispatches to the adapter for formType. An unregistered form type
// yields an empty record rather than an error: a submission we cannot place
// is deliberately a no-op merge, not a failure.
func (r *Registry) Extract(formType FormType, payload map[string]any) canonical.Record {
	adapter, ok := r.Get(formType)
	if !ok {
		return canonical.Record{}
	}
	return adapter.Extract(payload)
}

// Project dispatches to the adapter for formType. An unregistered form type
// yields an empty map.
func (r *Registry) Project(formType FormType, rec canonical.Record) map[string]string {
	adapter, ok := r.Get(formType)
	if !ok {
		return map[string]string{}
	}
	return adapter.Project(rec)
}
