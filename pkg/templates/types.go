// Package templates holds the legal/compliance document catalog and the
// variable-substitution renderer that fills templates for review and
// e-signature.
package templates

// Category buckets templates for catalog listings.
type Category string

const (
	CategoryAuthorization Category = "authorization"
	CategoryAgreement     Category = "agreement"
	CategoryGuide         Category = "guide"
	CategoryForm          Category = "form"
	CategoryDisclosure    Category = "disclosure"
)

// FieldKind is the capture type of a signature field.
type FieldKind string

const (
	FieldSignature FieldKind = "signature"
	FieldInitial   FieldKind = "initial"
	FieldDate      FieldKind = "date"
	FieldText      FieldKind = "text"
)

// SignatureField is a positioned capture point within a template. Page and
// X/Y place the field for overlay rendering during an e-signature flow; the
// capture flow itself is outside this package.
type SignatureField struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Page     int       `json:"page"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
}

// Template is an immutable catalog entry: static HTML content with
// {{variable}} placeholders plus metadata. Templates are data, not logic;
// nothing in the content is evaluated.
type Template struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Category           Category         `json:"category"`
	Content            string           `json:"content"`
	Variables          []string         `json:"variables"`
	RequiresSignatures bool             `json:"requiresSignatures"`
	SignatureFields    []SignatureField `json:"signatureFields,omitempty"`
}

// Clone returns a deep copy so catalog reads cannot mutate the stored entry.
func (t Template) Clone() Template {
	out := t
	out.Variables = append([]string(nil), t.Variables...)
	out.SignatureFields = append([]SignatureField(nil), t.SignatureFields...)
	return out
}
