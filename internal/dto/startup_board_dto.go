package dto

// CreateStartupBoardRequest is the body for POST /startup-boards and
// PUT /startup-boards/:id
type CreateStartupBoardRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Area        string `json:"area"`
	Website     string `json:"website"`
	IsActive    *bool  `json:"isActive"`
}

// PatchStartupBoardRequest is the body for PATCH /startup-boards/:id
type PatchStartupBoardRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Area        *string `json:"area"`
	Website     *string `json:"website"`
	IsActive    *bool   `json:"isActive"`
}

// LikeStatusResponse is the reply for every like endpoint
type LikeStatusResponse struct {
	IsLiked   bool  `json:"isLiked"`
	LikeCount int64 `json:"likeCount"`
}
