// Package store holds the session-scoped canonical record. The interface is
// the seam that lets a single-process deployment use the in-memory map while
// a multi-process deployment backs sessions with Redis, preserving the
// one-record-per-session invariant either way.
package store

import (
	"context"
	"errors"

	"github.com/goliatone/go-loandocs/pkg/canonical"
)

// ErrNotFound reports that no record exists for the session.
var ErrNotFound = errors.New("store: session record not found")

// RecordStore persists one canonical record per session id.
//
// Load returns ErrNotFound when the session has no record yet; implementations
// must not treat that as a failure mode worth logging. Save overwrites
// unconditionally. Delete of an absent session is a no-op.
type RecordStore interface {
	Load(ctx context.Context, sessionID string) (canonical.Record, error)
	Save(ctx context.Context, sessionID string, rec canonical.Record) error
	Delete(ctx context.Context, sessionID string) error
}
