package dto

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID           string `json:"userId"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
	Role             string `json:"role"`
	MembershipPlanID string `json:"membershipPlanId,omitempty"`
	AccountStatus    string `json:"accountStatus"`
	ProfilePicUrl    string `json:"profilePicUrl,omitempty"`
	CreatedAt        string `json:"createdAt"`
}
