package prefill_test

import (
	"testing"

	"github.com/goliatone/go-loandocs/pkg/canonical"
	"github.com/goliatone/go-loandocs/pkg/prefill"
)

func TestDefaultChecklistSize(t *testing.T) {
	// The checklist length is part of the contract: the score steps by
	// round(100/20) per field and dashboards compare scores across sessions.
	if got := len(prefill.DefaultChecklist()); got != 20 {
		t.Fatalf("checklist has %d fields, want 20", got)
	}
}

func TestScoreRounds(t *testing.T) {
	fields := prefill.DefaultChecklist()

	var rec canonical.Record
	if got := prefill.Score(rec, fields); got != 0 {
		t.Fatalf("empty record score = %d", got)
	}

	rec.Identity.FirstName = "Jane"
	rec.Identity.LastName = "Doe"
	rec.Identity.Email = "jane@example.com"
	if got := prefill.Score(rec, fields); got != 15 {
		t.Fatalf("three of twenty = %d, want 15", got)
	}
}

func TestScoreMonotoneInFields(t *testing.T) {
	fields := prefill.DefaultChecklist()

	var rec canonical.Record
	previous := prefill.Score(rec, fields)

	rec.Identity.FirstName = "Jane"
	rec.Identity.SSN = "123-45-6789"
	rec.Assets.Checking = []canonical.Account{{Institution: "Chase"}}

	next := prefill.Score(rec, fields)
	if next <= previous {
		t.Fatalf("adding fields did not increase score: %d -> %d", previous, next)
	}
}

func TestScoreCountsAccountInstitutions(t *testing.T) {
	fields := prefill.DefaultChecklist()

	var rec canonical.Record
	rec.Assets.Checking = []canonical.Account{{AccountNumber: "1111"}}
	if got := prefill.Score(rec, fields); got != 0 {
		t.Fatalf("account without institution counted: %d", got)
	}

	rec.Assets.Checking[0].Institution = "Chase"
	if got := prefill.Score(rec, fields); got != 5 {
		t.Fatalf("checking institution score = %d, want 5", got)
	}
}
