package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CreateWorkspaceRequest is the body for POST /workspaces and PUT /workspaces/:id
type CreateWorkspaceRequest struct {
	Name          string          `json:"name" binding:"required,max=255"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"imageUrl"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Country       string          `json:"country"`
	LocationID    *uuid.UUID      `json:"locationId"`
	Website       string          `json:"website"`
	FacilityCards json.RawMessage `json:"facilityCards"`
	NearbySpots   json.RawMessage `json:"nearbySpots"`
	CategoryFlags json.RawMessage `json:"categoryFlags"`
	IsActive      *bool           `json:"isActive"`
}

// PatchWorkspaceRequest is the body for PATCH /workspaces/:id
type PatchWorkspaceRequest struct {
	Name          *string         `json:"name" binding:"omitempty,max=255"`
	Description   *string         `json:"description"`
	ImageURL      *string         `json:"imageUrl"`
	Address       *string         `json:"address"`
	City          *string         `json:"city"`
	Country       *string         `json:"country"`
	LocationID    *uuid.UUID      `json:"locationId"`
	Website       *string         `json:"website"`
	FacilityCards json.RawMessage `json:"facilityCards"`
	NearbySpots   json.RawMessage `json:"nearbySpots"`
	CategoryFlags json.RawMessage `json:"categoryFlags"`
	IsActive      *bool           `json:"isActive"`
}

// WorkspaceRankingEntry is one row of the top-10 like ranking
type WorkspaceRankingEntry struct {
	WorkspaceID uuid.UUID `json:"workspaceId"`
	Name        string    `json:"name"`
	ImageURL    string    `json:"imageUrl"`
	City        string    `json:"city"`
	LikeCount   int64     `json:"likeCount"`
}

// GeocodeResponse is the reply for GET /geocode
type GeocodeResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Cached  bool    `json:"cached"`
}
