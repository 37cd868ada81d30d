package model

import "time"

type MembershipPlan struct {
	PlanID    string    `firestore:"planid,omitempty" json:"planId"`
	Name      string    `firestore:"name,omitempty" json:"name"`
	Price     float64   `firestore:"price,omitempty" json:"price"`
	Duration  string    `firestore:"duration,omitempty" json:"duration"` // "Monthly" or "Yearly"
	Features  []string  `firestore:"features,omitempty" json:"features,omitempty"`
	IsActive  bool      `firestore:"isactive" json:"isActive"`
	CreatedAt time.Time `firestore:"createdat,omitempty" json:"createdAt"`
}
