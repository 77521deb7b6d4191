package dto

import "climate-repair-system/internal/entities"

type CreateCommentDTO struct {
	Message string `json:"message" validate:"required,min=1"`
}

type CommentDTO struct {
	CommentID  int    `json:"comment_id"`
	Message    string `json:"message"`
	MasterID   int    `json:"master_id"`
	MasterName string `json:"master_name,omitempty"`
	RequestID  int    `json:"request_id"`
	CreatedAt  string `json:"created_at"`
}

func NewCommentDTO(c entities.Comment) CommentDTO {
	return CommentDTO{
		CommentID:  c.ID,
		Message:    c.Message,
		MasterID:   c.MasterID,
		MasterName: c.MasterName,
		RequestID:  c.RequestID,
		CreatedAt:  c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewCommentDTOs(list []entities.Comment) []CommentDTO {
	out := make([]CommentDTO, 0, len(list))
	for _, c := range list {
		out = append(out, NewCommentDTO(c))
	}
	return out
}
