package canonical

// Record is the consolidated borrower/property/loan structure every form
// adapter reads from and writes to. Leaves are display strings; an absent
// value is the empty string, never a sentinel. Struct fields are annotated so
// stores can serialise records directly.
type Record struct {
	Identity   Identity   `json:"identity"`
	Address    Address    `json:"address"`
	Employment Employment `json:"employment"`
	Income     Income     `json:"income"`
	Property   Property   `json:"property"`
	Loan       Loan       `json:"loan"`
	Assets     Assets     `json:"assets"`
}

// Identity groups the borrower's personal and contact fields.
type Identity struct {
	FirstName   string `json:"firstName,omitempty"`
	MiddleName  string `json:"middleName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	SSN         string `json:"ssn,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// Address is a US-style street address split into parts.
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// Employment captures the borrower's current employer.
type Employment struct {
	Employer   string `json:"employer,omitempty"`
	Title      string `json:"title,omitempty"`
	YearsOnJob string `json:"yearsOnJob,omitempty"`
}

// Income holds monthly income amounts as display strings.
type Income struct {
	Base       string `json:"base,omitempty"`
	Overtime   string `json:"overtime,omitempty"`
	Bonus      string `json:"bonus,omitempty"`
	Commission string `json:"commission,omitempty"`
	Other      string `json:"other,omitempty"`
}

// Property describes the subject property.
type Property struct {
	Address Address `json:"address"`
	Value   string  `json:"value,omitempty"`
	Type    string  `json:"type,omitempty"`
}

// Loan describes the requested loan.
type Loan struct {
	Type         string `json:"type,omitempty"`
	Amount       string `json:"amount,omitempty"`
	Purpose      string `json:"purpose,omitempty"`
	ExitStrategy string `json:"exitStrategy,omitempty"`
}

// Account is a single asset account. Institution plus account number is the
// identity used when merging asset lists.
type Account struct {
	Institution   string `json:"institution,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Balance       string `json:"balance,omitempty"`
}

// Assets groups the borrower's asset accounts by class.
type Assets struct {
	Checking   []Account `json:"checking,omitempty"`
	Savings    []Account `json:"savings,omitempty"`
	Retirement []Account `json:"retirement,omitempty"`
}

// IsZero reports whether the account carries no data at all.
func (a Account) IsZero() bool {
	return a.Institution == "" && a.AccountNumber == "" && a.Balance == ""
}

// Clone returns a deep copy of the record. Asset slices are the only
// reference-typed members.
func (r Record) Clone() Record {
	out := r
	out.Assets.Checking = cloneAccounts(r.Assets.Checking)
	out.Assets.Savings = cloneAccounts(r.Assets.Savings)
	out.Assets.Retirement = cloneAccounts(r.Assets.Retirement)
	return out
}

func cloneAccounts(accounts []Account) []Account {
	if accounts == nil {
		return nil
	}
	out := make([]Account, len(accounts))
	copy(out, accounts)
	return out
}
