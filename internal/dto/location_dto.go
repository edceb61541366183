package dto

import "startup-hub-api/internal/domain"

// CreateLocationRequest is the body for POST /locations and PUT /locations/:id
type CreateLocationRequest struct {
	City    string `json:"city" binding:"required,max=100"`
	Country string `json:"country" binding:"max=100"`
}

// PatchLocationRequest is the body for PATCH /locations/:id
type PatchLocationRequest struct {
	City    *string `json:"city" binding:"omitempty,max=100"`
	Country *string `json:"country" binding:"omitempty,max=100"`
}

// LocationGroup is one section of the grouped location listing: a Japanese
// region for domestic rows, a country for foreign rows
type LocationGroup struct {
	Label     string            `json:"label"`
	Domestic  bool              `json:"domestic"`
	Locations []domain.Location `json:"locations"`
}
