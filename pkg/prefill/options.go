package prefill

import (
	"github.com/goliatone/go-loandocs/pkg/forms"
	"github.com/goliatone/go-loandocs/pkg/store"
)

// Option customises the Service configuration.
type Option func(*Service)

// WithStore injects the session record store. Defaults to the in-memory
// store, which is process-local; multi-process deployments should inject the
// Redis store.
func WithStore(recordStore store.RecordStore) Option {
	return func(s *Service) {
		if recordStore == nil {
			return
		}
		s.store = recordStore
	}
}

// WithRegistry injects a custom adapter registry, replacing the built-ins.
func WithRegistry(registry *forms.Registry) Option {
	return func(s *Service) {
		if registry == nil {
			return
		}
		s.registry = registry
	}
}

// WithChecklist overrides the completeness checklist. Scores computed with a
// custom checklist are not comparable to default-checklist scores.
func WithChecklist(fields []ChecklistField) Option {
	return func(s *Service) {
		if len(fields) == 0 {
			return
		}
		s.fields = append([]ChecklistField{}, fields...)
	}
}
