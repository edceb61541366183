package domain

import "time"

// AssetProvision represents an asset provision listing (アセット提供),
// a company or public body offering equipment, data, or channels to startups
type AssetProvision struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Organizer   string     `gorm:"type:varchar(255);not null" json:"organizer"`
	Area        string     `gorm:"type:varchar(100);index:idx_asset_provisions_area" json:"area"`
	AssetType   string     `gorm:"type:varchar(100)" json:"assetType"`
	Deadline    *time.Time `gorm:"type:timestamp" json:"deadline"`
	Website     string     `gorm:"type:text" json:"website"`
	IsActive    bool       `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for AssetProvision
func (AssetProvision) TableName() string {
	return "asset_provisions"
}
