package dto

// CreateTechnologyRequest is the body for POST /technologies and PUT /technologies/:id
type CreateTechnologyRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Provider    string `json:"provider" binding:"required,max=255"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Website     string `json:"website"`
	IsActive    *bool  `json:"isActive"`
}

// PatchTechnologyRequest is the body for PATCH /technologies/:id
type PatchTechnologyRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	Provider    *string `json:"provider" binding:"omitempty,max=255"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	Website     *string `json:"website"`
	IsActive    *bool   `json:"isActive"`
}
