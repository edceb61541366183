package domain

import "gorm.io/datatypes"

// Facility represents a support facility listing (支援施設)
type Facility struct {
	BaseModel
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"type:text" json:"imageUrl"`
	Area        string         `gorm:"type:varchar(100);index:idx_facilities_area" json:"area"`
	Address     string         `gorm:"type:varchar(255)" json:"address"`
	Website     string         `gorm:"type:text" json:"website"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for Facility
func (Facility) TableName() string {
	return "facilities"
}
