// Package esign implements the signed-document contract on top of the
// template catalog: signing requests, the pending/signed/expired state
// machine, and the session tokens that bind a capture to a document.
package esign

import (
	"errors"
	"time"
)

// Status is the lifecycle state of a signing request. The only legal
// transitions are pending→signed and pending→expired; a signed document is
// immutable.
type Status string

const (
	StatusPending Status = "pending"
	StatusSigned  Status = "signed"
	StatusExpired Status = "expired"
)

var (
	// ErrDocumentNotFound reports an unknown document id.
	ErrDocumentNotFound = errors.New("esign: document not found")
	// ErrInvalidTransition reports an attempt to move a document out of a
	// terminal state.
	ErrInvalidTransition = errors.New("esign: invalid status transition")
	// ErrMissingFields reports a capture that leaves required signature
	// fields empty.
	ErrMissingFields = errors.New("esign: required signature fields missing")
	// ErrMissingSigner reports a capture without signer identity.
	ErrMissingSigner = errors.New("esign: signer identity required")
)

// Signer identifies who captured the signature and from where.
type Signer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"` // network origin address
}

// SignedDocument records one signing request against a template: which
// template, the rendered content it was generated from, the captured field
// values, and who signed when. Content is frozen at creation so later catalog
// changes can never alter what was put in front of the signer.
type SignedDocument struct {
	ID          string            `json:"id"`
	TemplateID  string            `json:"templateId"`
	SessionID   string            `json:"sessionId,omitempty"`
	Content     string            `json:"content"`
	FieldValues map[string]string `json:"fieldValues,omitempty"`
	Status      Status            `json:"status"`
	Signer      Signer            `json:"signer,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	SignedAt    time.Time         `json:"signedAt,omitempty"`
	ExpiresAt   time.Time         `json:"expiresAt"`
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (d SignedDocument) Clone() SignedDocument {
	out := d
	if d.FieldValues != nil {
		out.FieldValues = make(map[string]string, len(d.FieldValues))
		for key, value := range d.FieldValues {
			out.FieldValues[key] = value
		}
	}
	return out
}
