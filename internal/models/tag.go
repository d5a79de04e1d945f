package model

import "time"

// Tag has no updated_at; tags are created once and rarely renamed.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Color     string    `gorm:"size:7;not null;default:#3498db" json:"color"`
	CreatedAt time.Time `json:"created_at"`

	Tasks []Task `gorm:"many2many:task_tags" json:"tasks,omitempty"`
}

// TaskTag is the join table row for the Task<->Tag many-to-many; the pair is
// the composite key, so re-linking an existing pair cannot duplicate it.
type TaskTag struct {
	TaskID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}
