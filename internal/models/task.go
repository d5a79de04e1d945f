package model

import (
	"time"

	"task-manager-api.com/task-manager-api/internal/constants"
)

type Task struct {
	ID             uint                   `gorm:"primaryKey" json:"id"`
	Title          string                 `gorm:"size:200;not null" json:"title"`
	Description    *string                `gorm:"size:1000" json:"description"`
	Status         constants.TaskStatus   `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Priority       constants.TaskPriority `gorm:"type:varchar(20);not null;default:medium" json:"priority"`
	IsCompleted    bool                   `gorm:"not null;default:false" json:"is_completed"`
	DueDate        *time.Time             `json:"due_date"`
	EstimatedHours *float64               `json:"estimated_hours"`
	ActualHours    *float64               `json:"actual_hours"`
	ProjectID      *uint                  `gorm:"index" json:"project_id"`
	AssigneeID     *uint                  `gorm:"index" json:"assignee_id"`
	ParentTaskID   *uint                  `gorm:"index" json:"parent_task_id"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`

	Project    *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignee   *User     `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	ParentTask *Task     `gorm:"foreignKey:ParentTaskID" json:"parent_task,omitempty"`
	Subtasks   []Task    `gorm:"foreignKey:ParentTaskID" json:"subtasks,omitempty"`
	Tags       []Tag     `gorm:"many2many:task_tags" json:"tags,omitempty"`
	Comments   []Comment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}
