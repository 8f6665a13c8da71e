// Package intake exposes the pre-fill service and the document catalog over
// net/http: form submission, projection, completeness, schema listings, and
// document generation. It is extraction-friendly in the same way as the rest
// of the components tree: plain handlers, functional options, and a minimal
// mux seam.
package intake
