package forms

import "github.com/goliatone/go-loandocs/pkg/canonical"

// ShortApplicationAdapter maps the quick intake form. The form carries a
// single free-text borrower name and property address, so extraction leans on
// the SplitName/SplitAddress heuristics and projection reassembles the same
// single-line shapes.
type ShortApplicationAdapter struct{}

// FormType implements Adapter.
func (ShortApplicationAdapter) FormType() FormType { return FormShortApplication }

// Extract implements Adapter.
func (ShortApplicationAdapter) Extract(payload map[string]any) canonical.Record {
	var rec canonical.Record

	rec.Identity.FirstName, rec.Identity.LastName = SplitName(stringValue(payload, "borrowerName"))
	rec.Identity.Email = stringValue(payload, "email")
	rec.Identity.Phone = stringValue(payload, "phone")

	rec.Property.Address = SplitAddress(stringValue(payload, "propertyAddress"))
	rec.Property.Value = stringValue(payload, "propertyValue")
	rec.Property.Type = stringValue(payload, "propertyType")

	rec.Loan.Type = stringValue(payload, "loanType")
	rec.Loan.Amount = stringValue(payload, "loanAmount")
	rec.Loan.Purpose = stringValue(payload, "loanPurpose")
	rec.Loan.ExitStrategy = stringValue(payload, "exitStrategy")

	return rec
}

// Project implements Adapter.
func (ShortApplicationAdapter) Project(rec canonical.Record) map[string]string {
	return map[string]string{
		"borrowerName":    JoinName(rec.Identity.FirstName, rec.Identity.LastName),
		"email":           rec.Identity.Email,
		"phone":           rec.Identity.Phone,
		"propertyAddress": JoinAddress(rec.Property.Address),
		"propertyValue":   amountOrZero(rec.Property.Value),
		"propertyType":    rec.Property.Type,
		"loanType":        rec.Loan.Type,
		"loanAmount":      amountOrZero(rec.Loan.Amount),
		"loanPurpose":     rec.Loan.Purpose,
		"exitStrategy":    rec.Loan.ExitStrategy,
	}
}

// amountOrZero keeps numeric-looking outputs bindable: form inputs expect a
// number-shaped string even when nothing was captured.
func amountOrZero(value string) string {
	if value == "" {
		return "0"
	}
	return value
}
