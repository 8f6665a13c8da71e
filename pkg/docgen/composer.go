// Package docgen composes rendered documents into self-contained signing
// pages. The document body itself comes out of the templates package
// byte-exact; this layer only wraps it with page chrome and the positioned
// signature-field overlay, so it is free to use a real template engine.
package docgen

import (
	"embed"
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-loandocs/pkg/templates"
)

//go:embed pages/*.tpl
var pagesFS embed.FS

const signingPageTemplate = "pages/signing_page.tpl"

// Page is the input to the signing-page composer.
type Page struct {
	Title     string
	Document  string // rendered document HTML, inserted as-is
	Fields    []templates.SignatureField
	SubmitURL string // where the capture form posts; empty hides the form
	Token     string // signing-session token carried through the capture form
}

// Composer renders signing pages from the embedded page template set.
type Composer struct {
	mu  sync.Mutex
	set *pongo2.TemplateSet
	tpl *pongo2.Template
}

// NewComposer parses the embedded page templates.
func NewComposer() (*Composer, error) {
	set := pongo2.NewSet("loandocs", pongo2.NewFSLoader(pagesFS))
	tpl, err := set.FromFile(signingPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("docgen: parse signing page template: %w", err)
	}
	return &Composer{set: set, tpl: tpl}, nil
}

// SigningPage renders the full signing page for the document.
func (c *Composer) SigningPage(page Page) (string, error) {
	if page.Title == "" {
		page.Title = "Document for Signature"
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out, err := c.tpl.Execute(pongo2.Context{
		"title":     page.Title,
		"document":  page.Document,
		"fields":    page.Fields,
		"submitURL": page.SubmitURL,
		"token":     page.Token,
	})
	if err != nil {
		return "", fmt.Errorf("docgen: render signing page: %w", err)
	}
	return out, nil
}
