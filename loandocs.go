// Package loandocs re-exports the pre-fill and document-generation toolkit:
// form payloads map through per-form adapters into one consolidated borrower
// record per session, and a fixed catalog of legal document templates renders
// with variable substitution for review and e-signature.
package loandocs

import (
	"github.com/goliatone/go-loandocs/pkg/canonical"
	"github.com/goliatone/go-loandocs/pkg/forms"
	"github.com/goliatone/go-loandocs/pkg/prefill"
	"github.com/goliatone/go-loandocs/pkg/templates"
)

// Record is the consolidated borrower record all adapters read and write.
type Record = canonical.Record

// FormType tags a form payload shape.
type FormType = forms.FormType

// Supported built-in form types.
const (
	FormShortApplication = forms.FormShortApplication
	FormURLA             = forms.FormURLA
	FormCustomerPortal   = forms.FormCustomerPortal
)

// Template is a catalog entry: static content plus signature metadata.
type Template = templates.Template

// SignatureField is a positioned capture point within a template.
type SignatureField = templates.SignatureField

// Option customises the pre-fill service.
type Option = prefill.Option

// New constructs the pre-fill service with the built-in adapters and an
// in-memory session store, unless options override them.
func New(options ...Option) *prefill.Service {
	return prefill.New(options...)
}

// NewCatalog constructs the document catalog preloaded with the built-in
// templates.
func NewCatalog() *templates.Catalog {
	return templates.NewCatalog()
}

// WithStore forwards prefill.WithStore for callers wiring a shared session
// store.
var WithStore = prefill.WithStore

// WithRegistry forwards prefill.WithRegistry for callers adding form types.
var WithRegistry = prefill.WithRegistry
