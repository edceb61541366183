package domain

// Technology represents a technology seed listing (技術シーズ)
type Technology struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Provider    string `gorm:"type:varchar(255);not null" json:"provider"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
	ImageURL    string `gorm:"type:text" json:"imageUrl"`
	Website     string `gorm:"type:text" json:"website"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for Technology
func (Technology) TableName() string {
	return "technologies"
}
