package models

// PaymentRequest carries the amount for pay-EMI, part-payment and foreclosure
// calls. A nil amount marshals as null, same as an empty form field.
type PaymentRequest struct {
	AmountPaid *float64 `json:"amountPaid"`
}

// MarkPaidRequest records the date an EMI was actually settled.
type MarkPaidRequest struct {
	ActualPaymentDate string `json:"actualPaymentDate"`
}
