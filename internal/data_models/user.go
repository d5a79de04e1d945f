package dto

import (
	"time"

	model "task-manager-api.com/task-manager-api/internal/models"
)

type CreateUserRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}

type UpdateUserRequest struct {
	Username *string          `json:"username"`
	Email    *string          `json:"email"`
	FullName Optional[string] `json:"full_name"`
	IsActive *bool            `json:"is_active"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserDetailResponse struct {
	UserResponse
	OwnedProjects []ProjectResponse `json:"owned_projects"`
	AssignedTasks []TaskResponse    `json:"assigned_tasks"`
	Comments      []CommentResponse `json:"comments"`
}

func NewUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *NewUserResponse(&users[i]))
	}
	return out
}

func NewUserDetailResponse(u *model.User) *UserDetailResponse {
	return &UserDetailResponse{
		UserResponse:  *NewUserResponse(u),
		OwnedProjects: NewProjectResponses(u.OwnedProjects),
		AssignedTasks: NewTaskResponses(u.AssignedTasks),
		Comments:      NewCommentResponses(u.Comments),
	}
}
