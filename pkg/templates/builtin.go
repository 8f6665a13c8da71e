package templates

import "embed"

//go:embed content/*.html
var contentFS embed.FS

func mustContent(name string) string {
	raw, err := contentFS.ReadFile("content/" + name)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// builtinTemplates returns the shipped document set: six documents spanning
// all five categories. Signature placements are overlay coordinates on a
// 612x792 letter page.
func builtinTemplates() []Template {
	return []Template{
		{
			ID:       "credit_authorization",
			Name:     "Credit Report Authorization",
			Category: CategoryAuthorization,
			Content:  mustContent("credit_authorization.html"),
			Variables: []string{
				"borrowerName", "ssn", "dateOfBirth", "currentAddress",
				"brokerName", "date",
			},
			RequiresSignatures: true,
			SignatureFields: []SignatureField{
				{ID: "borrower_signature", Label: "Borrower Signature", Kind: FieldSignature, Required: true, Page: 1, X: 72, Y: 640},
				{ID: "borrower_sign_date", Label: "Date", Kind: FieldDate, Required: true, Page: 1, X: 400, Y: 640},
			},
		},
		{
			ID:       "broker_fee_agreement",
			Name:     "Broker Fee Agreement",
			Category: CategoryAgreement,
			Content:  mustContent("broker_fee_agreement.html"),
			Variables: []string{
				"borrowerName", "brokerName", "propertyAddress",
				"loanAmount", "brokerFeePercent", "date",
			},
			RequiresSignatures: true,
			SignatureFields: []SignatureField{
				{ID: "borrower_signature", Label: "Borrower Signature", Kind: FieldSignature, Required: true, Page: 1, X: 72, Y: 600},
				{ID: "borrower_sign_date", Label: "Borrower Date", Kind: FieldDate, Required: true, Page: 1, X: 400, Y: 600},
				{ID: "broker_signature", Label: "Broker Signature", Kind: FieldSignature, Required: true, Page: 1, X: 72, Y: 680},
				{ID: "broker_sign_date", Label: "Broker Date", Kind: FieldDate, Required: true, Page: 1, X: 400, Y: 680},
			},
		},
		{
			ID:       "personal_financial_statement",
			Name:     "Personal Financial Statement",
			Category: CategoryForm,
			Content:  mustContent("personal_financial_statement.html"),
			Variables: []string{
				"borrowerName", "dateOfBirth", "currentAddress", "employerName",
				"baseIncome", "checkingInstitution", "checkingBalance",
				"savingsInstitution", "savingsBalance", "date",
			},
			RequiresSignatures: true,
			SignatureFields: []SignatureField{
				{ID: "borrower_signature", Label: "Borrower Signature", Kind: FieldSignature, Required: true, Page: 1, X: 72, Y: 700},
				{ID: "borrower_sign_date", Label: "Date", Kind: FieldDate, Required: true, Page: 1, X: 400, Y: 700},
			},
		},
		{
			ID:       "rent_roll",
			Name:     "Rent Roll Certification",
			Category: CategoryForm,
			Content:  mustContent("rent_roll.html"),
			Variables: []string{
				"ownerName", "propertyAddress", "unitCount",
				"grossMonthlyRent", "date",
			},
			RequiresSignatures: true,
			SignatureFields: []SignatureField{
				{ID: "owner_initials", Label: "Owner Initials", Kind: FieldInitial, Required: true, Page: 1, X: 500, Y: 520},
				{ID: "owner_signature", Label: "Owner Signature", Kind: FieldSignature, Required: true, Page: 1, X: 72, Y: 640},
				{ID: "owner_sign_date", Label: "Date", Kind: FieldDate, Required: true, Page: 1, X: 400, Y: 640},
			},
		},
		{
			ID:       "verification_of_mortgage",
			Name:     "Verification of Mortgage",
			Category: CategoryDisclosure,
			Content:  mustContent("verification_of_mortgage.html"),
			Variables: []string{
				"borrowerName", "propertyAddress", "lenderName",
				"loanNumber", "date",
			},
			RequiresSignatures: true,
			SignatureFields: []SignatureField{
				{ID: "borrower_signature", Label: "Borrower Signature", Kind: FieldSignature, Required: true, Page: 1, X: 72, Y: 620},
				{ID: "borrower_sign_date", Label: "Date", Kind: FieldDate, Required: true, Page: 1, X: 400, Y: 620},
				{ID: "lender_reference", Label: "Lender Loan Reference", Kind: FieldText, Required: false, Page: 1, X: 72, Y: 680},
			},
		},
		{
			ID:       "dscr_loan_guide",
			Name:     "DSCR Loan Program Guide",
			Category: CategoryGuide,
			Content:  mustContent("dscr_loan_guide.html"),
			Variables: []string{
				"borrowerName", "brokerName", "loanAmount", "propertyAddress",
			},
			RequiresSignatures: false,
		},
	}
}
