package dto

import (
	"time"

	model "task-manager-api.com/task-manager-api/internal/models"
)

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	OwnerID     *uint   `json:"owner_id"`
}

type UpdateProjectRequest struct {
	Name        *string          `json:"name"`
	Description Optional[string] `json:"description"`
	IsActive    *bool            `json:"is_active"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	OwnerID     *uint     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	Owner *UserResponse  `json:"owner"`
	Tasks []TaskResponse `json:"tasks"`
}

func NewProjectResponse(p *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, *NewProjectResponse(&projects[i]))
	}
	return out
}

func NewProjectDetailResponse(p *model.Project) *ProjectDetailResponse {
	d := &ProjectDetailResponse{
		ProjectResponse: *NewProjectResponse(p),
		Tasks:           NewTaskResponses(p.Tasks),
	}
	if p.Owner != nil {
		d.Owner = NewUserResponse(p.Owner)
	}
	return d
}
