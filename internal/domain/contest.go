package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ContestCategory represents the category of a contest
type ContestCategory string

const (
	ContestInnovationChallenge ContestCategory = "INNOVATION_CHALLENGE"
	ContestBusinessPlan        ContestCategory = "BUSINESS_PLAN"
	ContestHackathon           ContestCategory = "HACKATHON"
	ContestPitch               ContestCategory = "PITCH"
	ContestOther               ContestCategory = "OTHER"
)

// Contest represents a startup contest listing (ビジネスコンテスト)
type Contest struct {
	BaseModel
	Title         string          `gorm:"type:varchar(255);not null" json:"title"`
	Description   string          `gorm:"type:text" json:"description"`
	ImageURL      string          `gorm:"type:text" json:"imageUrl"`
	Organizer     string          `gorm:"type:varchar(255);not null" json:"organizer"`
	OrganizerType OrganizerType   `gorm:"type:varchar(50);not null" json:"organizerType"`
	Category      ContestCategory `gorm:"type:varchar(50);not null" json:"category"`
	Area          string          `gorm:"type:varchar(100);index:idx_contests_area" json:"area"`
	Venue         string          `gorm:"type:varchar(255)" json:"venue"`
	Deadline      *time.Time      `gorm:"type:timestamp;index:idx_contests_deadline" json:"deadline"`
	StartDate     *time.Time      `gorm:"type:timestamp" json:"startDate"`
	Website       string          `gorm:"type:text" json:"website"`
	Contact       string          `gorm:"type:varchar(255)" json:"contact"`
	Amount        string          `gorm:"type:varchar(100)" json:"amount"`
	Tags          datatypes.JSON  `gorm:"type:jsonb" json:"tags"`
	IsActive      bool            `gorm:"not null;default:true;index:idx_contests_is_active" json:"isActive"`
}

// TableName specifies the table name for Contest
func (Contest) TableName() string {
	return "contests"
}
