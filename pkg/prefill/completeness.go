package prefill

import (
	"math"
	"strings"

	"github.com/goliatone/go-loandocs/pkg/canonical"
)

// ChecklistField is one tracked entry in the completeness score. Present
// reports whether the record carries a usable value for it.
type ChecklistField struct {
	Name    string
	Present func(rec canonical.Record) bool
}

// DefaultChecklist returns the fixed 20-field checklist behind the
// completeness score. The list is part of the service contract: pipeline
// dashboards compare scores across sessions, so it must not drift between
// deployments. Change it only alongside everything that displays the score.
func DefaultChecklist() []ChecklistField {
	return []ChecklistField{
		leaf("firstName", func(r canonical.Record) string { return r.Identity.FirstName }),
		leaf("lastName", func(r canonical.Record) string { return r.Identity.LastName }),
		leaf("email", func(r canonical.Record) string { return r.Identity.Email }),
		leaf("phone", func(r canonical.Record) string { return r.Identity.Phone }),
		leaf("ssn", func(r canonical.Record) string { return r.Identity.SSN }),
		leaf("dateOfBirth", func(r canonical.Record) string { return r.Identity.DateOfBirth }),
		leaf("street", func(r canonical.Record) string { return r.Address.Street }),
		leaf("city", func(r canonical.Record) string { return r.Address.City }),
		leaf("state", func(r canonical.Record) string { return r.Address.State }),
		leaf("zip", func(r canonical.Record) string { return r.Address.Zip }),
		leaf("employerName", func(r canonical.Record) string { return r.Employment.Employer }),
		leaf("jobTitle", func(r canonical.Record) string { return r.Employment.Title }),
		leaf("baseIncome", func(r canonical.Record) string { return r.Income.Base }),
		leaf("propertyStreet", func(r canonical.Record) string { return r.Property.Address.Street }),
		leaf("propertyCity", func(r canonical.Record) string { return r.Property.Address.City }),
		leaf("propertyValue", func(r canonical.Record) string { return r.Property.Value }),
		leaf("loanType", func(r canonical.Record) string { return r.Loan.Type }),
		leaf("loanAmount", func(r canonical.Record) string { return r.Loan.Amount }),
		account("checkingInstitution", func(r canonical.Record) []canonical.Account { return r.Assets.Checking }),
		account("savingsInstitution", func(r canonical.Record) []canonical.Account { return r.Assets.Savings }),
	}
}

// Score computes round(100 * present / tracked) for the record against the
// checklist. An empty checklist scores zero.
func Score(rec canonical.Record, fields []ChecklistField) int {
	if len(fields) == 0 {
		return 0
	}
	present := 0
	for _, field := range fields {
		if field.Present != nil && field.Present(rec) {
			present++
		}
	}
	return int(math.Round(100 * float64(present) / float64(len(fields))))
}

func leaf(name string, get func(canonical.Record) string) ChecklistField {
	return ChecklistField{
		Name: name,
		Present: func(rec canonical.Record) bool {
			return strings.TrimSpace(get(rec)) != ""
		},
	}
}

func account(name string, get func(canonical.Record) []canonical.Account) ChecklistField {
	return ChecklistField{
		Name: name,
		Present: func(rec canonical.Record) bool {
			for _, acct := range get(rec) {
				if strings.TrimSpace(acct.Institution) != "" {
					return true
				}
			}
			return false
		},
	}
}
