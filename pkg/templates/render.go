package templates

import (
	"regexp"
	"sort"
	"strings"
)

// Generate renders the identified template by substituting every {{key}}
// occurrence with vars[key]. Placeholders with no supplied variable stay in
// the output verbatim: these are legal documents, and a visible {{placeholder}}
// during review is safer than a silently blanked clause. Callers that need
// every variable bound should check MissingVariables first.
//
// Substitution is a single pass, so output is byte-identical for identical
// inputs and values that happen to contain placeholder syntax are never
// re-substituted.
func (c *Catalog) Generate(id string, vars map[string]string) (string, error) {
	tpl, err := c.Get(id)
	if err != nil {
		return "", err
	}
	return Substitute(tpl.Content, vars), nil
}

// Substitute performs the literal single-pass {{key}} replacement on content.
func Substitute(content string, vars map[string]string) string {
	if len(vars) == 0 {
		return content
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, "{{"+key+"}}", vars[key])
	}
	return strings.NewReplacer(pairs...).Replace(content)
}

var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_.]+)\}\}`)

// Placeholders lists the distinct {{key}} names in content, in first-seen
// order.
func Placeholders(content string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		key := match[1]
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// MissingVariables lists the template's declared variables that vars does not
// bind. The renderer itself never fails on a missing variable; validation
// before rendering signature-required documents is the caller's call to make.
func MissingVariables(tpl Template, vars map[string]string) []string {
	var missing []string
	for _, name := range tpl.Variables {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
