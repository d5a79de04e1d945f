package dto

import (
	"time"

	"task-manager-api.com/task-manager-api/internal/constants"
	model "task-manager-api.com/task-manager-api/internal/models"
)

type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	IsCompleted    *bool      `json:"is_completed"`
	DueDate        *time.Time `json:"due_date"`
	EstimatedHours *float64   `json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
	ProjectID      *uint      `json:"project_id"`
	AssigneeID     *uint      `json:"assignee_id"`
	ParentTaskID   *uint      `json:"parent_task_id"`
	TagIDs         []uint     `json:"tag_ids"`
}

// UpdateTaskRequest carries patch semantics: absent fields leave the task
// untouched. Nullable fields use Optional so an explicit null clears them.
// The parent link is fixed at creation and deliberately not updatable.
type UpdateTaskRequest struct {
	Title          *string             `json:"title"`
	Description    Optional[string]    `json:"description"`
	Status         *string             `json:"status"`
	Priority       *string             `json:"priority"`
	IsCompleted    *bool               `json:"is_completed"`
	DueDate        Optional[time.Time] `json:"due_date"`
	EstimatedHours Optional[float64]   `json:"estimated_hours"`
	ActualHours    Optional[float64]   `json:"actual_hours"`
	AssigneeID     Optional[uint]      `json:"assignee_id"`
	TagIDs         Optional[[]uint]    `json:"tag_ids"`
}

// TaskResponse is the flat projection: own fields plus raw foreign-key ids.
type TaskResponse struct {
	ID             uint                   `json:"id"`
	Title          string                 `json:"title"`
	Description    *string                `json:"description"`
	Status         constants.TaskStatus   `json:"status"`
	Priority       constants.TaskPriority `json:"priority"`
	IsCompleted    bool                   `json:"is_completed"`
	DueDate        *time.Time             `json:"due_date"`
	EstimatedHours *float64               `json:"estimated_hours"`
	ActualHours    *float64               `json:"actual_hours"`
	ProjectID      *uint                  `json:"project_id"`
	AssigneeID     *uint                  `json:"assignee_id"`
	ParentTaskID   *uint                  `json:"parent_task_id"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// TaskDetailResponse expands relations one level deep; the nested entities
// are themselves flat, so a parent task's own parent is not expanded.
type TaskDetailResponse struct {
	TaskResponse
	Project    *ProjectResponse  `json:"project"`
	Assignee   *UserResponse     `json:"assignee"`
	ParentTask *TaskResponse     `json:"parent_task"`
	Subtasks   []TaskResponse    `json:"subtasks"`
	Tags       []TagResponse     `json:"tags"`
	Comments   []CommentResponse `json:"comments"`
}

func NewTaskResponse(t *model.Task) *TaskResponse {
	return &TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		IsCompleted:    t.IsCompleted,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		ProjectID:      t.ProjectID,
		AssigneeID:     t.AssigneeID,
		ParentTaskID:   t.ParentTaskID,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *NewTaskResponse(&tasks[i]))
	}
	return out
}

func NewTaskDetailResponse(t *model.Task) *TaskDetailResponse {
	d := &TaskDetailResponse{
		TaskResponse: *NewTaskResponse(t),
		Subtasks:     NewTaskResponses(t.Subtasks),
		Tags:         NewTagResponses(t.Tags),
		Comments:     NewCommentResponses(t.Comments),
	}
	if t.Project != nil {
		d.Project = NewProjectResponse(t.Project)
	}
	if t.Assignee != nil {
		d.Assignee = NewUserResponse(t.Assignee)
	}
	if t.ParentTask != nil {
		d.ParentTask = NewTaskResponse(t.ParentTask)
	}
	return d
}

type TaskStats struct {
	TotalTasks      int64   `json:"total_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	PendingTasks    int64   `json:"pending_tasks"`
	InProgressTasks int64   `json:"in_progress_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
}
