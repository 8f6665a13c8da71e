package forms

import "github.com/goliatone/go-loandocs/pkg/canonical"

// CustomerPortalAdapter maps the self-service borrower portal submission: a
// middle ground between the two applications, with free-text addresses like
// the short form but discrete contact, employment, and a single bank account
// like the URLA.
type CustomerPortalAdapter struct{}

// FormType implements Adapter.
func (CustomerPortalAdapter) FormType() FormType { return FormCustomerPortal }

// Extract implements Adapter.
func (CustomerPortalAdapter) Extract(payload map[string]any) canonical.Record {
	var rec canonical.Record

	rec.Identity.FirstName, rec.Identity.LastName = SplitName(stringValue(payload, "fullName"))
	rec.Identity.Email = stringValue(payload, "email")
	rec.Identity.Phone = stringValue(payload, "phone")
	rec.Identity.DateOfBirth = stringValue(payload, "dateOfBirth")

	rec.Address = SplitAddress(stringValue(payload, "currentAddress"))

	rec.Employment.Employer = stringValue(payload, "employer")
	rec.Employment.Title = stringValue(payload, "jobTitle")
	rec.Income.Base = stringValue(payload, "monthlyIncome")

	rec.Property.Address = SplitAddress(stringValue(payload, "propertyAddress"))
	rec.Property.Value = stringValue(payload, "estimatedValue")
	rec.Property.Type = stringValue(payload, "propertyType")

	rec.Loan.Type = stringValue(payload, "loanType")
	rec.Loan.Amount = stringValue(payload, "loanAmount")
	rec.Loan.Purpose = stringValue(payload, "loanPurpose")
	rec.Loan.ExitStrategy = stringValue(payload, "exitStrategy")

	bank := canonical.Account{
		Institution:   stringValue(payload, "bankName"),
		AccountNumber: stringValue(payload, "bankAccountNumber"),
		Balance:       stringValue(payload, "bankBalance"),
	}
	if bank.Institution != "" || bank.AccountNumber != "" {
		rec.Assets.Checking = append(rec.Assets.Checking, bank)
	}

	return rec
}

// Project implements Adapter.
func (CustomerPortalAdapter) Project(rec canonical.Record) map[string]string {
	var bank canonical.Account
	if len(rec.Assets.Checking) > 0 {
		bank = rec.Assets.Checking[0]
	}
	return map[string]string{
		"fullName":          JoinName(rec.Identity.FirstName, rec.Identity.LastName),
		"email":             rec.Identity.Email,
		"phone":             rec.Identity.Phone,
		"dateOfBirth":       rec.Identity.DateOfBirth,
		"currentAddress":    JoinAddress(rec.Address),
		"employer":          rec.Employment.Employer,
		"jobTitle":          rec.Employment.Title,
		"monthlyIncome":     amountOrZero(rec.Income.Base),
		"propertyAddress":   JoinAddress(rec.Property.Address),
		"estimatedValue":    amountOrZero(rec.Property.Value),
		"propertyType":      rec.Property.Type,
		"loanType":          rec.Loan.Type,
		"loanAmount":        amountOrZero(rec.Loan.Amount),
		"loanPurpose":       rec.Loan.Purpose,
		"exitStrategy":      rec.Loan.ExitStrategy,
		"bankName":          bank.Institution,
		"bankAccountNumber": bank.AccountNumber,
		"bankBalance":       amountOrZero(bank.Balance),
	}
}
