package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Event represents a startup event listing (イベント)
type Event struct {
	BaseModel
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"type:text" json:"imageUrl"`
	Organizer   string         `gorm:"type:varchar(255);not null" json:"organizer"`
	Area        string         `gorm:"type:varchar(100);index:idx_events_area" json:"area"`
	Venue       string         `gorm:"type:varchar(255)" json:"venue"`
	StartDate   *time.Time     `gorm:"type:timestamp;index:idx_events_start_date" json:"startDate"`
	EndDate     *time.Time     `gorm:"type:timestamp" json:"endDate"`
	Website     string         `gorm:"type:text" json:"website"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}
