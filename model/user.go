package model

import "time"

const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super admin"
)

const (
	AccountActive    = "Active"
	AccountInactive  = "Inactive"
	AccountSuspended = "Suspended"
)

type User struct {
	UserID           string    `firestore:"userid,omitempty" json:"userId"`
	Username         string    `firestore:"username,omitempty" json:"username"`
	Email            string    `firestore:"email,omitempty" json:"email"`
	PhoneNumber      string    `firestore:"phonenumber,omitempty" json:"phoneNumber"`
	Password         string    `firestore:"password,omitempty" json:"-"`
	Role             string    `firestore:"role,omitempty" json:"role"`
	MembershipPlanID string    `firestore:"membershipplanid,omitempty" json:"membershipPlanId,omitempty"`
	AccountStatus    string    `firestore:"accountstatus,omitempty" json:"accountStatus"`
	ProfilePicUrl    string    `firestore:"profilepicurl,omitempty" json:"profilePicUrl,omitempty"`
	ProfileIDs       []string  `firestore:"profileids,omitempty" json:"profileIds,omitempty"`
	CreatedAt        time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	LastLoginAt      time.Time `firestore:"lastloginat,omitempty" json:"lastLoginAt"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role may review payments.
func IsAdmin(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
