package domain

import "time"

// Subsidy represents a subsidy or grant listing (補助金・助成金)
type Subsidy struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Organizer   string     `gorm:"type:varchar(255);not null" json:"organizer"`
	Area        string     `gorm:"type:varchar(100);index:idx_subsidies_area" json:"area"`
	Deadline    *time.Time `gorm:"type:timestamp;index:idx_subsidies_deadline" json:"deadline"`
	Amount      string     `gorm:"type:varchar(100)" json:"amount"`
	Category    string     `gorm:"type:varchar(100)" json:"category"`
	Website     string     `gorm:"type:text" json:"website"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for Subsidy
func (Subsidy) TableName() string {
	return "subsidies"
}
