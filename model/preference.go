package model

import "time"

type Range struct {
	Min int `firestore:"min,omitempty" json:"min,omitempty"`
	Max int `firestore:"max,omitempty" json:"max,omitempty"`
}

// PartnerPreference holds the filter a profile applies when searching for
// matches. One preference document per profile, keyed by the profile id.
type PartnerPreference struct {
	ProfileID        string    `firestore:"profileid,omitempty" json:"profileId"`
	AgeRange         Range     `firestore:"agerange,omitempty" json:"ageRange"`
	HeightRange      Range     `firestore:"heightrange,omitempty" json:"heightRange"` // cm
	MaritalStatusIDs []string  `firestore:"maritalstatusids,omitempty" json:"maritalStatusIds,omitempty"`
	ReligionIDs      []string  `firestore:"religionids,omitempty" json:"religionIds,omitempty"`
	MotherTongueIDs  []string  `firestore:"mothertongueids,omitempty" json:"motherTongueIds,omitempty"`
	CommunityIDs     []string  `firestore:"communityids,omitempty" json:"communityIds,omitempty"`
	CountryIDs       []string  `firestore:"countryids,omitempty" json:"countryIds,omitempty"`
	EducationIDs     []string  `firestore:"educationids,omitempty" json:"educationIds,omitempty"`
	ProfessionIDs    []string  `firestore:"professionids,omitempty" json:"professionIds,omitempty"`
	UpdatedAt        time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}
