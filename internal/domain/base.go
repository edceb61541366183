package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel contains common fields for all directory entities.
// Rows are hard-deleted; there is no soft-delete column.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// OrganizerType represents the kind of organization behind a listing
type OrganizerType string

const (
	OrganizerGovernment   OrganizerType = "GOVERNMENT"
	OrganizerMunicipality OrganizerType = "MUNICIPALITY"
	OrganizerPrivate      OrganizerType = "PRIVATE"
	OrganizerUniversity   OrganizerType = "UNIVERSITY"
	OrganizerOther        OrganizerType = "OTHER"
)
