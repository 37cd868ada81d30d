package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPlanNotFound       = errors.New("membership plan not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPreferenceNotFound = errors.New("preferences not found")
	ErrLookupNotFound     = errors.New("item not found")

	ErrEmailTaken = errors.New("email already exist")
	ErrPhoneTaken = errors.New("phone number already exist")
	ErrNameTaken  = errors.New("this name already exists")
)

// AlreadyReviewedError is returned when a terminal transition is attempted
// on a payment that already left pending. The stored record is untouched.
type AlreadyReviewedError struct {
	Status string
}

func (e *AlreadyReviewedError) Error() string {
	return "payment already " + e.Status
}
