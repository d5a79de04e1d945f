package dto

import (
	"time"

	model "task-manager-api.com/task-manager-api/internal/models"
)

type CreateTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type TagResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type TagDetailResponse struct {
	TagResponse
	Tasks []TaskResponse `json:"tasks"`
}

func NewTagResponse(t *model.Tag) *TagResponse {
	return &TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

func NewTagResponses(tags []model.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, *NewTagResponse(&tags[i]))
	}
	return out
}

func NewTagDetailResponse(t *model.Tag) *TagDetailResponse {
	return &TagDetailResponse{
		TagResponse: *NewTagResponse(t),
		Tasks:       NewTaskResponses(t.Tasks),
	}
}
