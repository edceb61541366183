package dto

// CreateFacilityRequest is the body for POST /facilities and PUT /facilities/:id
type CreateFacilityRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Area        string   `json:"area"`
	Address     string   `json:"address"`
	Website     string   `json:"website"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"isActive"`
}

// PatchFacilityRequest is the body for PATCH /facilities/:id
type PatchFacilityRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Area        *string  `json:"area"`
	Address     *string  `json:"address"`
	Website     *string  `json:"website"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"isActive"`
}
