// Package prefill coordinates form submissions against the consolidated
// borrower record: submissions are extracted by their form adapter and merged
// into the session's record, and any form can then be pre-filled from a
// projection of that record.
package prefill

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-loandocs/pkg/canonical"
	"github.com/goliatone/go-loandocs/pkg/forms"
	"github.com/goliatone/go-loandocs/pkg/store"
)

// Service is the application-owned pre-fill engine. Construct one with New
// and share it; there is no hidden global instance. All session state lives
// in the injected RecordStore, so the service itself is safe for concurrent
// use and serialises the read-modify-write cycle per session key.
type Service struct {
	store    store.RecordStore
	registry *forms.Registry
	fields   []ChecklistField

	sessions sessionLocks

	mu          sync.Mutex
	lastExtract map[string]map[forms.FormType]canonical.Record
}

// New creates a Service with an in-memory store, the built-in adapters, and
// the default completeness checklist, unless options override them.
func New(options ...Option) *Service {
	s := &Service{
		lastExtract: make(map[string]map[forms.FormType]canonical.Record),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.store == nil {
		s.store = store.NewMemory()
	}
	if s.registry == nil {
		s.registry = forms.NewRegistry()
	}
	if s.fields == nil {
		s.fields = DefaultChecklist()
	}
	return s
}

// StoreFormData extracts payload through the formType adapter and merges the
// result into the session's consolidated record. Malformed or unrecognised
// payloads never fail: an unknown form type or an unreadable field merges
// nothing. The returned error only reports store I/O problems.
func (s *Service) StoreFormData(ctx context.Context, sessionID string, formType forms.FormType, payload map[string]any) error {
	unlock := s.sessions.lock(sessionID)
	defer unlock()

	incoming := s.registry.Extract(formType, payload)
	s.rememberExtract(sessionID, formType, incoming)

	current, err := s.store.Load(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("prefill: load session %q: %w", sessionID, err)
	}

	merged := canonical.Merge(current, incoming)
	if err := s.store.Save(ctx, sessionID, merged); err != nil {
		return fmt.Errorf("prefill: save session %q: %w", sessionID, err)
	}
	return nil
}

// PreFilledData projects the session's consolidated record into the shape the
// target form expects. Every field of the target shape is present in the
// output with a deterministic default, so callers can bind values directly to
// inputs. A session with no data yields the target's all-defaults projection.
func (s *Service) PreFilledData(ctx context.Context, sessionID string, target forms.FormType) (map[string]string, error) {
	rec, err := s.record(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.registry.Project(target, rec), nil
}

// Record returns a copy of the session's consolidated record. A session with
// no submissions yet yields the zero record.
func (s *Service) Record(ctx context.Context, sessionID string) (canonical.Record, error) {
	return s.record(ctx, sessionID)
}

// Completeness scores the session's record 0-100 against the fixed field
// checklist: round(100 * present / tracked).
func (s *Service) Completeness(ctx context.Context, sessionID string) (int, error) {
	rec, err := s.record(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return Score(rec, s.fields), nil
}

// LastExtract returns the most recent adapter output for the session and form
// type, before merging. Intended for debugging and tests; correctness never
// depends on it.
func (s *Service) LastExtract(sessionID string, formType forms.FormType) (canonical.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byForm, ok := s.lastExtract[sessionID]
	if !ok {
		return canonical.Record{}, false
	}
	rec, ok := byForm[formType]
	return rec, ok
}

// Clear resets the session's consolidated record and per-form extract cache.
// Clearing an absent session is a no-op, so the call is idempotent.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	unlock := s.sessions.lock(sessionID)
	defer unlock()

	s.mu.Lock()
	delete(s.lastExtract, sessionID)
	s.mu.Unlock()

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("prefill: clear session %q: %w", sessionID, err)
	}
	return nil
}

// Registry exposes the adapter registry so callers can add form types.
func (s *Service) Registry() *forms.Registry {
	return s.registry
}

func (s *Service) record(ctx context.Context, sessionID string) (canonical.Record, error) {
	rec, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return canonical.Record{}, nil
	}
	if err != nil {
		return canonical.Record{}, fmt.Errorf("prefill: load session %q: %w", sessionID, err)
	}
	return rec, nil
}

func (s *Service) rememberExtract(sessionID string, formType forms.FormType, rec canonical.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byForm, ok := s.lastExtract[sessionID]
	if !ok {
		byForm = make(map[forms.FormType]canonical.Record)
		s.lastExtract[sessionID] = byForm
	}
	byForm[formType] = rec
}

// sessionLocks serialises read-modify-write cycles per session key. Sessions
// never share a lock, so there is no cross-session contention.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (s *sessionLocks) lock(sessionID string) func() {
	s.mu.Lock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
