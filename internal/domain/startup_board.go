package domain

// StartupBoard represents a startup introduction board (スタートアップボード).
// Like rows are kept in board_likes, keyed by the pseudonymous client id.
type StartupBoard struct {
	BaseModel
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	ImageURL    string      `gorm:"type:text" json:"imageUrl"`
	Area        string      `gorm:"type:varchar(100)" json:"area"`
	Website     string      `gorm:"type:text" json:"website"`
	IsActive    bool        `gorm:"not null;default:true" json:"isActive"`
	Likes       []BoardLike `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
}

// TableName specifies the table name for StartupBoard
func (StartupBoard) TableName() string {
	return "startup_boards"
}
