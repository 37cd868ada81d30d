package dto

// UploadPaymentRequest arrives as multipart form fields next to the slip
// image file.
type UploadPaymentRequest struct {
	MembershipPlanID string  `form:"membershipPlanId" binding:"required"`
	Amount           float64 `form:"amount"`
	TransactionID    string  `form:"transactionId"`
	PaymentMethod    string  `form:"paymentMethod"`
}

type ReviewPaymentRequest struct {
	Remarks string `json:"remarks"`
}
