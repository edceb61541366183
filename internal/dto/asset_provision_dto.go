package dto

import "time"

// CreateAssetProvisionRequest is the body for POST /asset-provisions and
// PUT /asset-provisions/:id
type CreateAssetProvisionRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	Organizer   string     `json:"organizer" binding:"required,max=255"`
	Area        string     `json:"area"`
	AssetType   string     `json:"assetType"`
	Deadline    *time.Time `json:"deadline"`
	Website     string     `json:"website"`
	IsActive    *bool      `json:"isActive"`
}

// PatchAssetProvisionRequest is the body for PATCH /asset-provisions/:id
type PatchAssetProvisionRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	Organizer   *string    `json:"organizer" binding:"omitempty,max=255"`
	Area        *string    `json:"area"`
	AssetType   *string    `json:"assetType"`
	Deadline    *time.Time `json:"deadline"`
	Website     *string    `json:"website"`
	IsActive    *bool      `json:"isActive"`
}
