package domain

// CountryJapan is the country value for domestic locations
const CountryJapan = "日本"

// Location represents a city-level grouping of workspaces.
// City holds a prefecture name for domestic rows and a city name for
// foreign rows; Country is 日本 for domestic rows.
type Location struct {
	BaseModel
	City       string      `gorm:"type:varchar(100);not null" json:"city"`
	Country    string      `gorm:"type:varchar(100);not null;default:'日本'" json:"country"`
	Workspaces []Workspace `gorm:"foreignKey:LocationID" json:"workspaces,omitempty"`
}

// IsDomestic reports whether the location is in Japan
func (l Location) IsDomestic() bool {
	return l.Country == CountryJapan
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}
