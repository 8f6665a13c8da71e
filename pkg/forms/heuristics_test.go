package forms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-loandocs/pkg/canonical"
	"github.com/goliatone/go-loandocs/pkg/forms"
)

func TestSplitAddress(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want canonical.Address
	}{
		{
			name: "full address",
			raw:  "123 Main St, Austin, TX 78701",
			want: canonical.Address{Street: "123 Main St", City: "Austin", State: "TX", Zip: "78701"},
		},
		{
			name: "street only",
			raw:  "123 Main St",
			want: canonical.Address{Street: "123 Main St"},
		},
		{
			name: "street and city",
			raw:  "123 Main St, Austin",
			want: canonical.Address{Street: "123 Main St", City: "Austin"},
		},
		{
			name: "state without zip",
			raw:  "123 Main St, Austin, TX",
			want: canonical.Address{Street: "123 Main St", City: "Austin", State: "TX"},
		},
		{
			name: "empty input",
			raw:  "   ",
			want: canonical.Address{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := forms.SplitAddress(tc.raw)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("address mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinAddressRoundTrips(t *testing.T) {
	addr := canonical.Address{Street: "123 Main St", City: "Austin", State: "TX", Zip: "78701"}
	joined := forms.JoinAddress(addr)
	if joined != "123 Main St, Austin, TX 78701" {
		t.Fatalf("joined address = %q", joined)
	}
	if diff := cmp.Diff(addr, forms.SplitAddress(joined)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinAddressOmitsMissingParts(t *testing.T) {
	if got := forms.JoinAddress(canonical.Address{Street: "123 Main St"}); got != "123 Main St" {
		t.Fatalf("street-only join = %q", got)
	}
	if got := forms.JoinAddress(canonical.Address{}); got != "" {
		t.Fatalf("empty join = %q", got)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		raw         string
		first, last string
	}{
		{"John Smith", "John", "Smith"},
		{"John", "John", ""},
		{"Mary Jane van der Berg", "Mary", "Jane van der Berg"},
		{"  ", "", ""},
	}

	for _, tc := range cases {
		first, last := forms.SplitName(tc.raw)
		if first != tc.first || last != tc.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)", tc.raw, first, last, tc.first, tc.last)
		}
	}
}
