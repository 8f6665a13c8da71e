package intake

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register net/http handlers.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// RegisterRoutes registers the intake endpoints under basePath on mux using
// default options plus any overrides. Patterns use net/http method routing,
// so the mux must support Go 1.22 ServeMux patterns.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) error {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers the intake endpoints using a pre-built
// Options value. Callers are expected to pass an Options value produced by
// NewOptions so defaults apply.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) error {
	if mux == nil {
		return fmt.Errorf("intake: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	h := handlers{opts: opts}
	base := normalizeBasePath(basePath)

	mux.Handle("POST "+base+"/forms/{formType}", h.guarded(h.submitForm))
	mux.Handle("GET "+base+"/forms/{formType}/prefill", h.guarded(h.prefillForm))
	mux.Handle("GET "+base+"/forms/{formType}/schema", h.guarded(h.formSchema))
	mux.Handle("GET "+base+"/completeness", h.guarded(h.completeness))
	mux.Handle("DELETE "+base+"/session", h.guarded(h.clearSession))
	mux.Handle("GET "+base+"/templates", h.guarded(h.listTemplates))
	mux.Handle("GET "+base+"/templates/{templateID}", h.guarded(h.getTemplate))
	mux.Handle("POST "+base+"/templates/{templateID}/generate", h.guarded(h.generateDocument))

	return nil
}

func normalizeBasePath(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" || basePath == "/" {
		return ""
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/")
}
