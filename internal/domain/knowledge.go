package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Knowledge represents a knowledge article (ナレッジ記事).
// Content holds raw markdown; rendering is the client's concern.
type Knowledge struct {
	BaseModel
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Content     string         `gorm:"type:text" json:"content"`
	Category    string         `gorm:"type:varchar(100)" json:"category"`
	ImageURL    string         `gorm:"type:text" json:"imageUrl"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	PublishedAt *time.Time     `gorm:"type:timestamp" json:"publishedAt"`
	IsActive    bool           `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for Knowledge
func (Knowledge) TableName() string {
	return "knowledge_articles"
}
