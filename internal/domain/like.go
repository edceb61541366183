package domain

import "github.com/google/uuid"

// ClientID is the pseudonymous, client-generated identifier sent in the
// x-client-id header. It is a best-effort dedup key, never an identity.

// BoardLike records one client's like on a startup board
type BoardLike struct {
	BaseModel
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_board_likes_board_id;uniqueIndex:uq_board_likes_board_client" json:"boardId"`
	ClientID string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_board_likes_board_client" json:"clientId"`
}

// TableName specifies the table name for BoardLike
func (BoardLike) TableName() string {
	return "board_likes"
}

// WorkspaceLike records one client's like on a workspace
type WorkspaceLike struct {
	BaseModel
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index:idx_workspace_likes_workspace_id;uniqueIndex:uq_workspace_likes_workspace_client" json:"workspaceId"`
	ClientID    string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_workspace_likes_workspace_client" json:"clientId"`
}

// TableName specifies the table name for WorkspaceLike
func (WorkspaceLike) TableName() string {
	return "workspace_likes"
}
