package model

import "time"

// Lookup is the shared shape of every taxonomy table (religion, city,
// country and friends). The closed set of kinds lives in services.
type Lookup struct {
	ID          string    `firestore:"id,omitempty" json:"id"`
	Name        string    `firestore:"name,omitempty" json:"name"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}
