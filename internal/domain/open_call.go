package domain

import (
	"time"

	"gorm.io/datatypes"
)

// OpenCall represents an open-call listing (公募) from an accelerator or public body
type OpenCall struct {
	BaseModel
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	ImageURL      string         `gorm:"type:text" json:"imageUrl"`
	Organizer     string         `gorm:"type:varchar(255);not null" json:"organizer"`
	OrganizerType OrganizerType  `gorm:"type:varchar(50);not null" json:"organizerType"`
	Area          string         `gorm:"type:varchar(100);index:idx_open_calls_area" json:"area"`
	Deadline      *time.Time     `gorm:"type:timestamp;index:idx_open_calls_deadline" json:"deadline"`
	Website       string         `gorm:"type:text" json:"website"`
	Contact       string         `gorm:"type:varchar(255)" json:"contact"`
	Tags          datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsActive      bool           `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for OpenCall
func (OpenCall) TableName() string {
	return "open_calls"
}
