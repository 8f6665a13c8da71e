// Package formspec exposes the OpenAPI schemas describing the form payload
// shapes the adapters accept. The document is descriptive: adapters stay
// total and never reject a payload, but UIs and integrators need a machine-
// readable contract for what each form carries.
package formspec

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-loandocs/pkg/forms"
)

//go:embed forms.yaml
var rawSpec []byte

// schemaNames maps form types to their component schema in the document.
var schemaNames = map[forms.FormType]string{
	forms.FormShortApplication: "ShortApplication",
	forms.FormURLA:             "UrlaApplication",
	forms.FormCustomerPortal:   "CustomerPortalSubmission",
}

// Spec is the loaded form-payload document.
type Spec struct {
	doc *openapi3.T
}

// Load parses the embedded OpenAPI document.
func Load() (*Spec, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("formspec: load document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("formspec: validate document: %w", err)
	}
	return &Spec{doc: doc}, nil
}

// FormTypes returns the form types the document describes, sorted.
func (s *Spec) FormTypes() []forms.FormType {
	out := make([]forms.FormType, 0, len(schemaNames))
	for formType := range schemaNames {
		out = append(out, formType)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FieldNames returns the sorted top-level property names of the form's
// payload schema, or nil for an undescribed form type.
func (s *Spec) FieldNames(formType forms.FormType) []string {
	schema := s.schema(formType)
	if schema == nil {
		return nil
	}
	out := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SchemaJSON returns the form's payload schema as JSON, for serving to
// clients.
func (s *Spec) SchemaJSON(formType forms.FormType) ([]byte, error) {
	schema := s.schema(formType)
	if schema == nil {
		return nil, fmt.Errorf("formspec: no schema for form type %q", formType)
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("formspec: encode schema for %q: %w", formType, err)
	}
	return raw, nil
}

func (s *Spec) schema(formType forms.FormType) *openapi3.Schema {
	name, ok := schemaNames[formType]
	if !ok || s.doc == nil || s.doc.Components == nil {
		return nil
	}
	ref, ok := s.doc.Components.Schemas[name]
	if !ok || ref == nil {
		return nil
	}
	return ref.Value
}
