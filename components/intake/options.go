package intake

import (
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-loandocs/pkg/formspec"
	"github.com/goliatone/go-loandocs/pkg/prefill"
	"github.com/goliatone/go-loandocs/pkg/templates"
)

// GuardFunc can reject a request before any handler logic runs.
type GuardFunc func(r *http.Request) error

// Options configures the intake component.
type Options struct {
	SessionHeader string
	MaxBodyBytes  int64
	Guard         GuardFunc

	Service *prefill.Service
	Catalog *templates.Catalog
	Spec    *formspec.Spec

	// Sanitizer scrubs template variable values arriving over HTTP before
	// they reach the renderer. The renderer itself substitutes literally;
	// scrubbing at the boundary is the caller-side validation the renderer
	// deliberately leaves to us.
	Sanitizer *bluemonday.Policy
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the component defaults. Service and Catalog are nil
// here; NewOptions fills them so every construction path ends up with working
// collaborators.
func DefaultOptions() Options {
	return Options{
		SessionHeader: "X-Session-ID",
		MaxBodyBytes:  1 << 20,
	}
}

// NewOptions applies overrides on top of the defaults and fills anything
// still missing.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.SessionHeader == "" {
		opts.SessionHeader = "X-Session-ID"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.Service == nil {
		opts.Service = prefill.New()
	}
	if opts.Catalog == nil {
		opts.Catalog = templates.NewCatalog()
	}
	if opts.Sanitizer == nil {
		opts.Sanitizer = bluemonday.StrictPolicy()
	}
	return opts
}

// WithService injects the pre-fill service the component fronts.
func WithService(service *prefill.Service) OptionFn {
	return func(o *Options) {
		if o == nil || service == nil {
			return
		}
		o.Service = service
	}
}

// WithCatalog injects the document catalog.
func WithCatalog(catalog *templates.Catalog) OptionFn {
	return func(o *Options) {
		if o == nil || catalog == nil {
			return
		}
		o.Catalog = catalog
	}
}

// WithFormSpec injects the form payload schemas, enabling the schema
// endpoint.
func WithFormSpec(spec *formspec.Spec) OptionFn {
	return func(o *Options) {
		if o == nil || spec == nil {
			return
		}
		o.Spec = spec
	}
}

// WithSessionHeader overrides the header carrying the session id.
func WithSessionHeader(name string) OptionFn {
	return func(o *Options) {
		if o == nil || name == "" {
			return
		}
		o.SessionHeader = name
	}
}

// WithGuard installs a request guard.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithSanitizer overrides the variable sanitizer policy.
func WithSanitizer(policy *bluemonday.Policy) OptionFn {
	return func(o *Options) {
		if o == nil || policy == nil {
			return
		}
		o.Sanitizer = policy
	}
}

// WithMaxBodyBytes caps accepted request body sizes.
func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil || limit <= 0 {
			return
		}
		o.MaxBodyBytes = limit
	}
}
