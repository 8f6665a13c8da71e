package canonical_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-loandocs/pkg/canonical"
)

func TestMergeNonEmptyOverwrites(t *testing.T) {
	existing := canonical.Record{}
	existing.Identity.FirstName = "John"
	existing.Loan.Amount = "250000"

	incoming := canonical.Record{}
	incoming.Identity.FirstName = "Jonathan"
	incoming.Identity.LastName = "Smith"

	merged := canonical.Merge(existing, incoming)

	want := canonical.Record{}
	want.Identity.FirstName = "Jonathan"
	want.Identity.LastName = "Smith"
	want.Loan.Amount = "250000"

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged record mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEmptyNeverErases(t *testing.T) {
	existing := canonical.Record{}
	existing.Income.Base = "5000"

	incoming := canonical.Record{}
	incoming.Income.Base = ""

	merged := canonical.Merge(existing, incoming)
	if merged.Income.Base != "5000" {
		t.Fatalf("empty incoming value erased existing: got %q, want %q", merged.Income.Base, "5000")
	}
}

func TestMergeIdempotent(t *testing.T) {
	incoming := canonical.Record{}
	incoming.Identity.FirstName = "Jane"
	incoming.Identity.SSN = "123-45-6789"
	incoming.Property.Value = "750000"
	incoming.Assets.Checking = []canonical.Account{
		{Institution: "Chase", AccountNumber: "1111", Balance: "100"},
	}

	once := canonical.Merge(canonical.Record{}, incoming)
	twice := canonical.Merge(once, incoming)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("second merge changed the record (-once +twice):\n%s", diff)
	}
}

func TestMergeAccountsUpdatesMatchingEntry(t *testing.T) {
	first := []canonical.Account{
		{Institution: "Chase", AccountNumber: "1111", Balance: "100"},
	}
	merged := canonical.MergeAccounts(first, []canonical.Account{
		{Institution: "Chase", AccountNumber: "1111", Balance: "200"},
	})

	want := []canonical.Account{
		{Institution: "Chase", AccountNumber: "1111", Balance: "200"},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("account merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeAccountsAppendsNewEntryAndDropsEmpty(t *testing.T) {
	existing := []canonical.Account{
		{Institution: "Chase", AccountNumber: "1111", Balance: "100"},
	}
	merged := canonical.MergeAccounts(existing, []canonical.Account{
		{},
		{Institution: "Wells Fargo", AccountNumber: "2222", Balance: "300"},
	})

	want := []canonical.Account{
		{Institution: "Chase", AccountNumber: "1111", Balance: "100"},
		{Institution: "Wells Fargo", AccountNumber: "2222", Balance: "300"},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("account merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	existing := canonical.Record{}
	existing.Assets.Savings = []canonical.Account{
		{Institution: "Ally", AccountNumber: "9", Balance: "10"},
	}

	merged := canonical.Merge(existing, canonical.Record{})
	merged.Assets.Savings[0].Balance = "999"

	if existing.Assets.Savings[0].Balance != "10" {
		t.Fatal("merge output aliases input asset slice")
	}
}
