package dto

import "time"

// CreateContestRequest is the body for POST /contests and PUT /contests/:id
type CreateContestRequest struct {
	Title         string     `json:"title" binding:"required,max=255"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	Organizer     string     `json:"organizer" binding:"required,max=255"`
	OrganizerType string     `json:"organizerType" binding:"required,oneof=GOVERNMENT MUNICIPALITY PRIVATE UNIVERSITY OTHER"`
	Category      string     `json:"category" binding:"required,oneof=INNOVATION_CHALLENGE BUSINESS_PLAN HACKATHON PITCH OTHER"`
	Area          string     `json:"area"`
	Venue         string     `json:"venue"`
	Deadline      *time.Time `json:"deadline"`
	StartDate     *time.Time `json:"startDate"`
	Website       string     `json:"website"`
	Contact       string     `json:"contact"`
	Amount        string     `json:"amount"`
	Tags          []string   `json:"tags"`
	IsActive      *bool      `json:"isActive"`
}

// PatchContestRequest is the body for PATCH /contests/:id.
// Only non-nil fields are applied; the common case is the isActive toggle.
type PatchContestRequest struct {
	Title         *string    `json:"title" binding:"omitempty,max=255"`
	Description   *string    `json:"description"`
	ImageURL      *string    `json:"imageUrl"`
	Organizer     *string    `json:"organizer" binding:"omitempty,max=255"`
	OrganizerType *string    `json:"organizerType" binding:"omitempty,oneof=GOVERNMENT MUNICIPALITY PRIVATE UNIVERSITY OTHER"`
	Category      *string    `json:"category" binding:"omitempty,oneof=INNOVATION_CHALLENGE BUSINESS_PLAN HACKATHON PITCH OTHER"`
	Area          *string    `json:"area"`
	Venue         *string    `json:"venue"`
	Deadline      *time.Time `json:"deadline"`
	StartDate     *time.Time `json:"startDate"`
	Website       *string    `json:"website"`
	Contact       *string    `json:"contact"`
	Amount        *string    `json:"amount"`
	Tags          []string   `json:"tags"`
	IsActive      *bool      `json:"isActive"`
}
