package model

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	FullName  *string   `gorm:"size:100" json:"full_name"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OwnedProjects []Project `gorm:"foreignKey:OwnerID" json:"owned_projects,omitempty"`
	AssignedTasks []Task    `gorm:"foreignKey:AssigneeID" json:"assigned_tasks,omitempty"`
	Comments      []Comment `gorm:"foreignKey:AuthorID" json:"comments,omitempty"`
}
