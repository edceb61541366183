package dto

import "time"

// CreateOpenCallRequest is the body for POST /open-calls and PUT /open-calls/:id
type CreateOpenCallRequest struct {
	Title         string     `json:"title" binding:"required,max=255"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	Organizer     string     `json:"organizer" binding:"required,max=255"`
	OrganizerType string     `json:"organizerType" binding:"required,oneof=GOVERNMENT MUNICIPALITY PRIVATE UNIVERSITY OTHER"`
	Area          string     `json:"area"`
	Deadline      *time.Time `json:"deadline"`
	Website       string     `json:"website"`
	Contact       string     `json:"contact"`
	Tags          []string   `json:"tags"`
	IsActive      *bool      `json:"isActive"`
}

// PatchOpenCallRequest is the body for PATCH /open-calls/:id
type PatchOpenCallRequest struct {
	Title         *string    `json:"title" binding:"omitempty,max=255"`
	Description   *string    `json:"description"`
	ImageURL      *string    `json:"imageUrl"`
	Organizer     *string    `json:"organizer" binding:"omitempty,max=255"`
	OrganizerType *string    `json:"organizerType" binding:"omitempty,oneof=GOVERNMENT MUNICIPALITY PRIVATE UNIVERSITY OTHER"`
	Area          *string    `json:"area"`
	Deadline      *time.Time `json:"deadline"`
	Website       *string    `json:"website"`
	Contact       *string    `json:"contact"`
	Tags          []string   `json:"tags"`
	IsActive      *bool      `json:"isActive"`
}
