package types

import "Tipbox/models"

type CreateTipRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateTipRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type TipResponse struct {
	Message string      `json:"message"`
	Tip     *models.Tip `json:"tip"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ToggleLikeResponse struct {
	Message    string `json:"message"`
	IsLiked    bool   `json:"is_liked"`
	LikesCount int64  `json:"likes_count"`
}
