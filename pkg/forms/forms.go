// Package forms maps loan-form payloads in and out of the canonical borrower
// record. Each supported form type owns an Adapter that projects its native
// shape into canonical.Record and back. Adapters are total functions: any
// payload shape produces a best-effort partial record, never an error.
package forms

import "github.com/goliatone/go-loandocs/pkg/canonical"

// FormType tags the shape of a form payload.
type FormType string

const (
	// FormShortApplication is the quick intake form: free-text name and
	// property address plus headline loan figures.
	FormShortApplication FormType = "shortApplication"
	// FormURLA is the long-form URLA-style application with discrete
	// identity, employment, income, and asset sections.
	FormURLA FormType = "urla"
	// FormCustomerPortal is the self-service borrower portal submission.
	FormCustomerPortal FormType = "customerPortal"
)

// Adapter converts between one form's native payload shape and the canonical
// record. Both directions are total: Extract accepts any payload and returns
// whatever it could recognise, Project emits a deterministic value for every
// output field (empty string, or "0" for amount fields) so consumers can bind
// form inputs without nil checks.
type Adapter interface {
	FormType() FormType
	Extract(payload map[string]any) canonical.Record
	Project(rec canonical.Record) map[string]string
}
