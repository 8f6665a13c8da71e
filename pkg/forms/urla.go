package forms

import "github.com/goliatone/go-loandocs/pkg/canonical"

// URLAAdapter maps the long-form URLA-style application. The form carries
// discrete identity, address, employment, income, property, and loan fields,
// so extraction is a straight per-field copy with no heuristics. Asset
// accounts arrive either as an "assets" array (entries tagged with an
// assetType) or as the flat first-account-per-class keys the projection
// emits.
type URLAAdapter struct{}

// FormType implements Adapter.
func (URLAAdapter) FormType() FormType { return FormURLA }

// Extract implements Adapter.
func (URLAAdapter) Extract(payload map[string]any) canonical.Record {
	var rec canonical.Record

	rec.Identity.FirstName = stringValue(payload, "firstName")
	rec.Identity.MiddleName = stringValue(payload, "middleName")
	rec.Identity.LastName = stringValue(payload, "lastName")
	rec.Identity.SSN = stringValue(payload, "ssn")
	rec.Identity.DateOfBirth = stringValue(payload, "dateOfBirth")
	rec.Identity.Email = stringValue(payload, "email")
	rec.Identity.Phone = stringValue(payload, "phone")

	rec.Address.Street = stringValue(payload, "street")
	rec.Address.City = stringValue(payload, "city")
	rec.Address.State = stringValue(payload, "state")
	rec.Address.Zip = stringValue(payload, "zip")

	rec.Employment.Employer = stringValue(payload, "employerName")
	rec.Employment.Title = stringValue(payload, "jobTitle")
	rec.Employment.YearsOnJob = stringValue(payload, "yearsOnJob")

	rec.Income.Base = stringValue(payload, "baseIncome")
	rec.Income.Overtime = stringValue(payload, "overtimeIncome")
	rec.Income.Bonus = stringValue(payload, "bonusIncome")
	rec.Income.Commission = stringValue(payload, "commissionIncome")
	rec.Income.Other = stringValue(payload, "otherIncome")

	rec.Property.Address.Street = stringValue(payload, "propertyStreet")
	rec.Property.Address.City = stringValue(payload, "propertyCity")
	rec.Property.Address.State = stringValue(payload, "propertyState")
	rec.Property.Address.Zip = stringValue(payload, "propertyZip")
	rec.Property.Value = stringValue(payload, "propertyValue")
	rec.Property.Type = stringValue(payload, "propertyType")

	rec.Loan.Type = stringValue(payload, "loanType")
	rec.Loan.Amount = stringValue(payload, "loanAmount")
	rec.Loan.Purpose = stringValue(payload, "loanPurpose")
	rec.Loan.ExitStrategy = stringValue(payload, "exitStrategy")

	rec.Assets = extractAssets(payload)

	return rec
}

func extractAssets(payload map[string]any) canonical.Assets {
	var assets canonical.Assets

	for _, entry := range list(payload, "assets") {
		account := canonical.Account{
			Institution:   stringValue(entry, "institution"),
			AccountNumber: stringValue(entry, "accountNumber"),
			Balance:       stringValue(entry, "balance"),
		}
		if account.IsZero() {
			continue
		}
		switch stringValue(entry, "assetType") {
		case "savings":
			assets.Savings = append(assets.Savings, account)
		case "retirement":
			assets.Retirement = append(assets.Retirement, account)
		default:
			assets.Checking = append(assets.Checking, account)
		}
	}

	appendFlatAccount(&assets.Checking, payload, "checking")
	appendFlatAccount(&assets.Savings, payload, "savings")
	appendFlatAccount(&assets.Retirement, payload, "retirement")

	return assets
}

func appendFlatAccount(dst *[]canonical.Account, payload map[string]any, prefix string) {
	account := canonical.Account{
		Institution:   stringValue(payload, prefix+"Institution"),
		AccountNumber: stringValue(payload, prefix+"AccountNumber"),
		Balance:       stringValue(payload, prefix+"Balance"),
	}
	// A balance with no institution or account number is the projection's
	// "0" placeholder, not an account.
	if account.Institution == "" && account.AccountNumber == "" {
		return
	}
	*dst = canonical.MergeAccounts(*dst, []canonical.Account{account})
}

// Project implements Adapter. Asset output is limited to the first account
// per class; additional accounts stay in the canonical record but have no
// home in this form's flat shape.
func (URLAAdapter) Project(rec canonical.Record) map[string]string {
	out := map[string]string{
		"firstName":        rec.Identity.FirstName,
		"middleName":       rec.Identity.MiddleName,
		"lastName":         rec.Identity.LastName,
		"ssn":              rec.Identity.SSN,
		"dateOfBirth":      rec.Identity.DateOfBirth,
		"email":            rec.Identity.Email,
		"phone":            rec.Identity.Phone,
		"street":           rec.Address.Street,
		"city":             rec.Address.City,
		"state":            rec.Address.State,
		"zip":              rec.Address.Zip,
		"employerName":     rec.Employment.Employer,
		"jobTitle":         rec.Employment.Title,
		"yearsOnJob":       rec.Employment.YearsOnJob,
		"baseIncome":       amountOrZero(rec.Income.Base),
		"overtimeIncome":   amountOrZero(rec.Income.Overtime),
		"bonusIncome":      amountOrZero(rec.Income.Bonus),
		"commissionIncome": amountOrZero(rec.Income.Commission),
		"otherIncome":      amountOrZero(rec.Income.Other),
		"propertyStreet":   rec.Property.Address.Street,
		"propertyCity":     rec.Property.Address.City,
		"propertyState":    rec.Property.Address.State,
		"propertyZip":      rec.Property.Address.Zip,
		"propertyValue":    amountOrZero(rec.Property.Value),
		"propertyType":     rec.Property.Type,
		"loanType":         rec.Loan.Type,
		"loanAmount":       amountOrZero(rec.Loan.Amount),
		"loanPurpose":      rec.Loan.Purpose,
		"exitStrategy":     rec.Loan.ExitStrategy,
	}

	projectFlatAccount(out, "checking", rec.Assets.Checking)
	projectFlatAccount(out, "savings", rec.Assets.Savings)
	projectFlatAccount(out, "retirement", rec.Assets.Retirement)

	return out
}

func projectFlatAccount(out map[string]string, prefix string, accounts []canonical.Account) {
	var first canonical.Account
	if len(accounts) > 0 {
		first = accounts[0]
	}
	out[prefix+"Institution"] = first.Institution
	out[prefix+"AccountNumber"] = first.AccountNumber
	out[prefix+"Balance"] = amountOrZero(first.Balance)
}
