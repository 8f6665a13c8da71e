package templates

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound reports an unknown template id. Unlike the mapper's permissive
// handling of unknown form types, an unknown template id is a hard failure:
// generating the wrong legal document silently is worse than refusing.
var ErrNotFound = errors.New("templates: template not found")

// Catalog stores document templates by id. NewCatalog ships the built-in
// documents; Register exists so a surrounding application can add templates
// at startup, though the built-in set is expected to be all most deployments
// use.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewCatalog creates a catalog preloaded with the built-in templates.
func NewCatalog() *Catalog {
	c := NewEmptyCatalog()
	for _, tpl := range builtinTemplates() {
		c.MustRegister(tpl)
	}
	return c
}

// NewEmptyCatalog creates a catalog with no templates.
func NewEmptyCatalog() *Catalog {
	return &Catalog{
		templates: make(map[string]Template),
	}
}

// Register adds a template by id. Duplicate ids return an error.
func (c *Catalog) Register(tpl Template) error {
	if tpl.ID == "" {
		return fmt.Errorf("templates: template id is required")
	}
	if tpl.Content == "" {
		return fmt.Errorf("templates: template %q has no content", tpl.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.templates[tpl.ID]; exists {
		return fmt.Errorf("templates: template %q already registered", tpl.ID)
	}

	c.templates[tpl.ID] = tpl.Clone()
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (c *Catalog) MustRegister(tpl Template) {
	if err := c.Register(tpl); err != nil {
		panic(err)
	}
}

// Get retrieves a template by id, wrapping ErrNotFound for unknown ids.
func (c *Catalog) Get(id string) (Template, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tpl, ok := c.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return tpl.Clone(), nil
}

// All returns every template sorted by id.
func (c *Catalog) All() []Template {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Template, 0, len(c.templates))
	for _, tpl := range c.templates {
		out = append(out, tpl.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByCategory returns the templates in a category sorted by id.
func (c *Catalog) ByCategory(category Category) []Template {
	all := c.All()
	out := make([]Template, 0, len(all))
	for _, tpl := range all {
		if tpl.Category == category {
			out = append(out, tpl)
		}
	}
	return out
}

// Has reports whether a template id is registered.
func (c *Catalog) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.templates[id]
	return ok
}
