package model

import "time"

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// Payment is one membership-payment slip submission. Status starts at
// pending and moves exactly once to approved or rejected; after that the
// record is frozen except for admin deletion.
type Payment struct {
	PaymentID        string    `firestore:"paymentid,omitempty" json:"paymentId"`
	UserID           string    `firestore:"userid,omitempty" json:"userId"`
	MembershipPlanID string    `firestore:"membershipplanid,omitempty" json:"membershipPlanId"`
	Amount           float64   `firestore:"amount,omitempty" json:"amount"`
	PaymentSlipUrl   string    `firestore:"paymentslipurl,omitempty" json:"paymentSlipUrl"`
	Status           string    `firestore:"status,omitempty" json:"status"`
	PaymentMethod    string    `firestore:"paymentmethod,omitempty" json:"paymentMethod"`
	TransactionID    string    `firestore:"transactionid,omitempty" json:"transactionId,omitempty"`
	Remarks          string    `firestore:"remarks,omitempty" json:"remarks,omitempty"`
	ReviewedBy       string    `firestore:"reviewedby,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt       time.Time `firestore:"reviewedat,omitempty" json:"reviewedAt"`
	CreatedAt        time.Time `firestore:"createdat,omitempty" json:"createdAt"`
}

func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentApproved, PaymentRejected:
		return true
	default:
		return false
	}
}
