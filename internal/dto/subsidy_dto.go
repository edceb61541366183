package dto

import "time"

// CreateSubsidyRequest is the body for POST /subsidies and PUT /subsidies/:id
type CreateSubsidyRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	Organizer   string     `json:"organizer" binding:"required,max=255"`
	Area        string     `json:"area"`
	Deadline    *time.Time `json:"deadline"`
	Amount      string     `json:"amount"`
	Category    string     `json:"category"`
	Website     string     `json:"website"`
	IsActive    *bool      `json:"isActive"`
}

// PatchSubsidyRequest is the body for PATCH /subsidies/:id
type PatchSubsidyRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	Organizer   *string    `json:"organizer" binding:"omitempty,max=255"`
	Area        *string    `json:"area"`
	Deadline    *time.Time `json:"deadline"`
	Amount      *string    `json:"amount"`
	Category    *string    `json:"category"`
	Website     *string    `json:"website"`
	IsActive    *bool      `json:"isActive"`
}
