package intake

import "net/http"

// Component bundles the intake handlers with their configuration so an
// application can construct once and mount wherever it likes.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return NewOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Handler returns a standalone handler with the component's routes mounted
// at the root.
func (c *Component) Handler() http.Handler {
	mux := http.NewServeMux()
	_ = c.RegisterRoutes(mux, "")
	return mux
}

// RegisterRoutes mounts the component endpoints under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) error {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
