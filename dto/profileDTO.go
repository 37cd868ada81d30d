package dto

type CreateProfileRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	DOB             string `json:"dob" binding:"required"` // YYYY-MM-DD
	Gender          string `json:"gender" binding:"required"`
	Bio             string `json:"bio" binding:"required"`
	HeightFeet      string `json:"heightFeet"`
	MaritalStatusID string `json:"maritalStatusId"`
	ReligionID      string `json:"religionId"`
	CommunityID     string `json:"communityId"`
	MotherTongueID  string `json:"motherTongueId"`
	CountryID       string `json:"countryId"`
	CityID          string `json:"cityId"`
	EducationID     string `json:"educationId"`
	ProfessionID    string `json:"professionId"`
}

type UpdateProfileRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Bio             string `json:"bio"`
	HeightFeet      string `json:"heightFeet"`
	MaritalStatusID string `json:"maritalStatusId"`
	ReligionID      string `json:"religionId"`
	CommunityID     string `json:"communityId"`
	MotherTongueID  string `json:"motherTongueId"`
	CountryID       string `json:"countryId"`
	CityID          string `json:"cityId"`
	EducationID     string `json:"educationId"`
	ProfessionID    string `json:"professionId"`
}
