package esign

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-loandocs/pkg/templates"
)

// DefaultExpiry is how long a signing request stays open before it can be
// expired. The surrounding application owns the actual expiry policy; this is
// the fallback when none is configured.
const DefaultExpiry = 72 * time.Hour

// Service manages signing requests in memory. Persistence of signed documents
// beyond the process is the surrounding application's job; the service's
// contract is the state machine, not durability.
type Service struct {
	catalog *templates.Catalog
	expiry  time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	documents map[string]SignedDocument
}

// ServiceOption customises the Service.
type ServiceOption func(*Service)

// WithExpiry overrides how long new signing requests stay open.
func WithExpiry(expiry time.Duration) ServiceOption {
	return func(s *Service) {
		if expiry > 0 {
			s.expiry = expiry
		}
	}
}

// WithClock injects the time source, for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a signing service over the given catalog.
func NewService(catalog *templates.Catalog, options ...ServiceOption) *Service {
	s := &Service{
		catalog:   catalog,
		expiry:    DefaultExpiry,
		now:       time.Now,
		documents: make(map[string]SignedDocument),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// CreateRequest renders the template with vars and opens a pending signing
// request for it. Unknown template ids fail with the catalog's not-found
// error.
func (s *Service) CreateRequest(templateID, sessionID string, vars map[string]string) (SignedDocument, error) {
	tpl, err := s.catalog.Get(templateID)
	if err != nil {
		return SignedDocument{}, err
	}
	if !tpl.RequiresSignatures {
		return SignedDocument{}, fmt.Errorf("esign: template %q does not require signatures", templateID)
	}

	now := s.now()
	doc := SignedDocument{
		ID:         uuid.NewString(),
		TemplateID: templateID,
		SessionID:  sessionID,
		Content:    templates.Substitute(tpl.Content, vars),
		Status:     StatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.expiry),
	}

	s.mu.Lock()
	s.documents[doc.ID] = doc
	s.mu.Unlock()

	return doc.Clone(), nil
}

// Get returns the signing request by document id.
func (s *Service) Get(documentID string) (SignedDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[documentID]
	if !ok {
		return SignedDocument{}, fmt.Errorf("%w: %q", ErrDocumentNotFound, documentID)
	}
	return doc.Clone(), nil
}

// Sign captures field values and signer identity, moving the document from
// pending to signed. Every required signature field must have a non-empty
// value and the signer must carry a name; anything else leaves the document
// pending. Signing a signed or expired document is an invalid transition.
func (s *Service) Sign(documentID string, signer Signer, fieldValues map[string]string) (SignedDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[documentID]
	if !ok {
		return SignedDocument{}, fmt.Errorf("%w: %q", ErrDocumentNotFound, documentID)
	}
	if doc.Status != StatusPending {
		return SignedDocument{}, fmt.Errorf("%w: %s document cannot be signed", ErrInvalidTransition, doc.Status)
	}
	if strings.TrimSpace(signer.Name) == "" {
		return SignedDocument{}, ErrMissingSigner
	}

	tpl, err := s.catalog.Get(doc.TemplateID)
	if err != nil {
		return SignedDocument{}, err
	}
	if missing := missingRequiredFields(tpl, fieldValues); len(missing) > 0 {
		return SignedDocument{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	doc.Status = StatusSigned
	doc.Signer = signer
	doc.SignedAt = s.now()
	doc.FieldValues = make(map[string]string, len(fieldValues))
	for key, value := range fieldValues {
		doc.FieldValues[key] = value
	}

	s.documents[documentID] = doc
	return doc.Clone(), nil
}

// Expire moves a pending document to expired. Expiring a signed document is
// an invalid transition; expiring an already expired one is a no-op.
func (s *Service) Expire(documentID string) (SignedDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[documentID]
	if !ok {
		return SignedDocument{}, fmt.Errorf("%w: %q", ErrDocumentNotFound, documentID)
	}
	switch doc.Status {
	case StatusExpired:
		return doc.Clone(), nil
	case StatusSigned:
		return SignedDocument{}, fmt.Errorf("%w: signed document cannot expire", ErrInvalidTransition)
	}

	doc.Status = StatusExpired
	s.documents[documentID] = doc
	return doc.Clone(), nil
}

// ExpireOverdue expires every pending document past its ExpiresAt and returns
// how many were expired. Intended for a periodic sweep owned by the caller.
func (s *Service) ExpireOverdue() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	expired := 0
	for id, doc := range s.documents {
		if doc.Status == StatusPending && now.After(doc.ExpiresAt) {
			doc.Status = StatusExpired
			s.documents[id] = doc
			expired++
		}
	}
	return expired
}

func missingRequiredFields(tpl templates.Template, fieldValues map[string]string) []string {
	var missing []string
	for _, field := range tpl.SignatureFields {
		if !field.Required {
			continue
		}
		if strings.TrimSpace(fieldValues[field.ID]) == "" {
			missing = append(missing, field.ID)
		}
	}
	return missing
}
