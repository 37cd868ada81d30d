package dto

type CreateLookupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateLookupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreatePlanRequest struct {
	Name     string   `json:"name" binding:"required"`
	Price    float64  `json:"price" binding:"required"`
	Duration string   `json:"duration"`
	Features []string `json:"features"`
}
