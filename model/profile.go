package model

import "time"

type Profile struct {
	ProfileID       string    `firestore:"profileid,omitempty" json:"profileId"`
	UserID          string    `firestore:"userid,omitempty" json:"userId"`
	FirstName       string    `firestore:"firstname,omitempty" json:"firstName"`
	LastName        string    `firestore:"lastname,omitempty" json:"lastName"`
	DOB             time.Time `firestore:"dob,omitempty" json:"dob"`
	Gender          string    `firestore:"gender,omitempty" json:"gender"` // Male, Female, Other
	Bio             string    `firestore:"bio,omitempty" json:"bio"`
	HeightFeet      string    `firestore:"heightfeet,omitempty" json:"heightFeet,omitempty"`
	MaritalStatusID string    `firestore:"maritalstatusid,omitempty" json:"maritalStatusId,omitempty"`
	ReligionID      string    `firestore:"religionid,omitempty" json:"religionId,omitempty"`
	CommunityID     string    `firestore:"communityid,omitempty" json:"communityId,omitempty"`
	MotherTongueID  string    `firestore:"mothertongueid,omitempty" json:"motherTongueId,omitempty"`
	CountryID       string    `firestore:"countryid,omitempty" json:"countryId,omitempty"`
	CityID          string    `firestore:"cityid,omitempty" json:"cityId,omitempty"`
	EducationID     string    `firestore:"educationid,omitempty" json:"educationId,omitempty"`
	ProfessionID    string    `firestore:"professionid,omitempty" json:"professionId,omitempty"`
	ProfileImageUrl string    `firestore:"profileimageurl,omitempty" json:"profileImageUrl,omitempty"`
	IsVerified      bool      `firestore:"isverified" json:"isVerified"`
	CreatedAt       time.Time `firestore:"createdat,omitempty" json:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedat,omitempty" json:"updatedAt"`
}
