package forms

import (
	"strings"

	"github.com/goliatone/go-loandocs/pkg/canonical"
)

// SplitAddress breaks a free-text address into street/city/state/zip parts.
// The input splits on commas into at most three parts: street, city, and a
// trailing "STATE ZIP" pair that splits on the first space. Missing parts
// degrade to empty strings.
//
// This is a best-effort heuristic for US-style single-line addresses, not a
// validated parser: multi-word states, unit suffixes after the zip, and
// non-US formats are not handled.
func SplitAddress(raw string) canonical.Address {
	var out canonical.Address
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return out
	}

	parts := strings.SplitN(trimmed, ",", 3)
	out.Street = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		out.City = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		stateZip := strings.TrimSpace(parts[2])
		if idx := strings.Index(stateZip, " "); idx >= 0 {
			out.State = strings.TrimSpace(stateZip[:idx])
			out.Zip = strings.TrimSpace(stateZip[idx+1:])
		} else {
			out.State = stateZip
		}
	}
	return out
}

// JoinAddress reassembles address parts into the single-line form SplitAddress
// consumes. Empty parts are omitted along with their separators so a
// street-only address round-trips cleanly.
func JoinAddress(addr canonical.Address) string {
	var parts []string
	if addr.Street != "" {
		parts = append(parts, addr.Street)
	}
	if addr.City != "" {
		parts = append(parts, addr.City)
	}
	if stateZip := strings.TrimSpace(addr.State + " " + addr.Zip); stateZip != "" {
		parts = append(parts, stateZip)
	}
	return strings.Join(parts, ", ")
}

// SplitName splits a full name on whitespace: first token is the first name,
// the rest joined by spaces is the last name. Middle names and suffixes are
// not recognised on this path; only the long-form application carries a
// discrete middle name.
func SplitName(raw string) (first, last string) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], strings.Join(tokens[1:], " ")
}

// JoinName reassembles the full-name form SplitName consumes.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
