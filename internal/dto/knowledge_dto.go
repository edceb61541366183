package dto

import "time"

// CreateKnowledgeRequest is the body for POST /knowledge and PUT /knowledge/:id
type CreateKnowledgeRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsActive    *bool      `json:"isActive"`
}

// PatchKnowledgeRequest is the body for PATCH /knowledge/:id
type PatchKnowledgeRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Content     *string    `json:"content"`
	Category    *string    `json:"category"`
	ImageURL    *string    `json:"imageUrl"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsActive    *bool      `json:"isActive"`
}
