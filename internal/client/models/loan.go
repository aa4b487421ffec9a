package models

// LoanRequest is the common payload shape shared by the new-loan and
// existing-loan endpoints. Numeric fields are optional pointers produced by
// numeric coercion: nil marshals as JSON null, mirroring an empty form field.
// EMIAmount is the one exception: it is omitted entirely when nil, because
// the new-loan endpoint must not receive it at all (the backend computes it).
type LoanRequest struct {
	LoanName                  string   `json:"loanName"`
	Category                  string   `json:"category"`
	Lender                    string   `json:"lender"`
	Principal                 *float64 `json:"principal"`
	AnnualInterestRate        *float64 `json:"annualInterestRate"`
	TenureMonths              *float64 `json:"tenureMonths"`
	EMIAmount                 *float64 `json:"emiAmount,omitempty"`
	StartDate                 *string  `json:"startDate"`
	EMIStartDate              *string  `json:"emiStartDate"`
	EMIDayOfMonth             *float64 `json:"emiDayOfMonth"`
	ForeclosureAllowed        bool     `json:"foreclosureAllowed"`
	ForeclosurePenaltyPercent *float64 `json:"foreclosurePenaltyPercent"`
	PartPaymentAllowed        bool     `json:"partPaymentAllowed"`
}

// WithoutEMIAmount returns a copy of the request with the EMI amount removed.
// The new-loan endpoint rejects client-provided EMI amounts, so the pipeline
// strips the field before sending regardless of what the form collected.
func (r LoanRequest) WithoutEMIAmount() LoanRequest {
	r.EMIAmount = nil
	return r
}

// OptionalDate converts a form date string into the payload representation:
// empty input becomes JSON null, anything else is passed through verbatim.
func OptionalDate(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
