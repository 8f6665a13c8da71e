package canonical

import "strings"

// Merge folds src into dst and returns the result. The rule is value-wise: a
// non-empty incoming leaf overwrites the existing one, an empty incoming leaf
// never erases existing data. Asset lists merge by (institution, account
// number) identity. Merging the same src twice is a no-op the second time.
func Merge(dst, src Record) Record {
	out := dst.Clone()

	overwrite(&out.Identity.FirstName, src.Identity.FirstName)
	overwrite(&out.Identity.MiddleName, src.Identity.MiddleName)
	overwrite(&out.Identity.LastName, src.Identity.LastName)
	overwrite(&out.Identity.SSN, src.Identity.SSN)
	overwrite(&out.Identity.DateOfBirth, src.Identity.DateOfBirth)
	overwrite(&out.Identity.Email, src.Identity.Email)
	overwrite(&out.Identity.Phone, src.Identity.Phone)

	mergeAddress(&out.Address, src.Address)

	overwrite(&out.Employment.Employer, src.Employment.Employer)
	overwrite(&out.Employment.Title, src.Employment.Title)
	overwrite(&out.Employment.YearsOnJob, src.Employment.YearsOnJob)

	overwrite(&out.Income.Base, src.Income.Base)
	overwrite(&out.Income.Overtime, src.Income.Overtime)
	overwrite(&out.Income.Bonus, src.Income.Bonus)
	overwrite(&out.Income.Commission, src.Income.Commission)
	overwrite(&out.Income.Other, src.Income.Other)

	mergeAddress(&out.Property.Address, src.Property.Address)
	overwrite(&out.Property.Value, src.Property.Value)
	overwrite(&out.Property.Type, src.Property.Type)

	overwrite(&out.Loan.Type, src.Loan.Type)
	overwrite(&out.Loan.Amount, src.Loan.Amount)
	overwrite(&out.Loan.Purpose, src.Loan.Purpose)
	overwrite(&out.Loan.ExitStrategy, src.Loan.ExitStrategy)

	out.Assets.Checking = MergeAccounts(out.Assets.Checking, src.Assets.Checking)
	out.Assets.Savings = MergeAccounts(out.Assets.Savings, src.Assets.Savings)
	out.Assets.Retirement = MergeAccounts(out.Assets.Retirement, src.Assets.Retirement)

	return out
}

// MergeAccounts folds incoming accounts into existing ones. An incoming entry
// matching an existing (institution, account number) pair updates it in
// place, a non-matching non-empty entry is appended, and empty entries are
// dropped. Existing order is preserved.
func MergeAccounts(existing, incoming []Account) []Account {
	out := cloneAccounts(existing)
	for _, account := range incoming {
		if account.IsZero() {
			continue
		}
		idx := findAccount(out, account)
		if idx < 0 {
			out = append(out, account)
			continue
		}
		overwrite(&out[idx].Institution, account.Institution)
		overwrite(&out[idx].AccountNumber, account.AccountNumber)
		overwrite(&out[idx].Balance, account.Balance)
	}
	return out
}

func findAccount(accounts []Account, candidate Account) int {
	for i, account := range accounts {
		if accountKey(account) == accountKey(candidate) {
			return i
		}
	}
	return -1
}

func accountKey(a Account) string {
	return strings.TrimSpace(a.Institution) + "\x00" + strings.TrimSpace(a.AccountNumber)
}

func mergeAddress(dst *Address, src Address) {
	overwrite(&dst.Street, src.Street)
	overwrite(&dst.City, src.City)
	overwrite(&dst.State, src.State)
	overwrite(&dst.Zip, src.Zip)
}

func overwrite(dst *string, src string) {
	if strings.TrimSpace(src) == "" {
		return
	}
	*dst = src
}
