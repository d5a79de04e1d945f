package dto

import (
	"time"

	model "task-manager-api.com/task-manager-api/internal/models"
)

type CreateCommentRequest struct {
	Content  string `json:"content"`
	TaskID   uint   `json:"task_id"`
	AuthorID uint   `json:"author_id"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	TaskID    *uint     `json:"task_id"`
	AuthorID  *uint     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentDetailResponse struct {
	CommentResponse
	Task   *TaskResponse `json:"task"`
	Author *UserResponse `json:"author"`
}

func NewCommentResponse(c *model.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		TaskID:    c.TaskID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *NewCommentResponse(&comments[i]))
	}
	return out
}

func NewCommentDetailResponse(c *model.Comment) *CommentDetailResponse {
	d := &CommentDetailResponse{CommentResponse: *NewCommentResponse(c)}
	if c.Task != nil {
		d.Task = NewTaskResponse(c.Task)
	}
	if c.Author != nil {
		d.Author = NewUserResponse(c.Author)
	}
	return d
}
