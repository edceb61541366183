package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Workspace represents a coworking space or incubation office listing.
// FacilityCards, NearbySpots, and CategoryFlags are free-form JSON blocks
// only the detail page renders; listing responses omit them.
type Workspace struct {
	BaseModel
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	ImageURL      string          `gorm:"type:text" json:"imageUrl"`
	Address       string          `gorm:"type:varchar(255)" json:"address"`
	City          string          `gorm:"type:varchar(100)" json:"city"`
	Country       string          `gorm:"type:varchar(100);not null;default:'日本'" json:"country"`
	LocationID    *uuid.UUID      `gorm:"type:uuid;index:idx_workspaces_location_id" json:"locationId"`
	Website       string          `gorm:"type:text" json:"website"`
	FacilityCards datatypes.JSON  `gorm:"type:jsonb" json:"facilityCards,omitempty"`
	NearbySpots   datatypes.JSON  `gorm:"type:jsonb" json:"nearbySpots,omitempty"`
	CategoryFlags datatypes.JSON  `gorm:"type:jsonb" json:"categoryFlags,omitempty"`
	IsActive      bool            `gorm:"not null;default:true" json:"isActive"`
	Location      *Location       `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Likes         []WorkspaceLike `gorm:"foreignKey:WorkspaceID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
}

// TableName specifies the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
