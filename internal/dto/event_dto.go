package dto

import "time"

// CreateEventRequest is the body for POST /events and PUT /events/:id
type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Organizer   string     `json:"organizer" binding:"required,max=255"`
	Area        string     `json:"area"`
	Venue       string     `json:"venue"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Website     string     `json:"website"`
	Tags        []string   `json:"tags"`
	IsActive    *bool      `json:"isActive"`
}

// PatchEventRequest is the body for PATCH /events/:id
type PatchEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	Organizer   *string    `json:"organizer" binding:"omitempty,max=255"`
	Area        *string    `json:"area"`
	Venue       *string    `json:"venue"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Website     *string    `json:"website"`
	Tags        []string   `json:"tags"`
	IsActive    *bool      `json:"isActive"`
}
