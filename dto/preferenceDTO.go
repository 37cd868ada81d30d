package dto

type RangeRequest struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type PreferenceRequest struct {
	AgeRange         RangeRequest `json:"ageRange"`
	HeightRange      RangeRequest `json:"heightRange"`
	MaritalStatusIDs []string     `json:"maritalStatusIds"`
	ReligionIDs      []string     `json:"religionIds"`
	MotherTongueIDs  []string     `json:"motherTongueIds"`
	CommunityIDs     []string     `json:"communityIds"`
	CountryIDs       []string     `json:"countryIds"`
	EducationIDs     []string     `json:"educationIds"`
	ProfessionIDs    []string     `json:"professionIds"`
}
