package validators

import (
	"task-manager-api.com/task-manager-api/internal/constants"
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

const (
	statusHint   = "must be one of pending, in_progress, completed, cancelled"
	priorityHint = "must be one of low, medium, high, urgent"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	fields := map[string]string{}

	if !lengthBetween(r.Title, 1, 200) {
		fields["title"] = "must be between 1 and 200 characters"
	}
	if r.Description != nil && !lengthBetween(*r.Description, 0, 1000) {
		fields["description"] = "must be at most 1000 characters"
	}
	if r.Status != nil && !constants.TaskStatus(*r.Status).Valid() {
		fields["status"] = statusHint
	}
	if r.Priority != nil && !constants.TaskPriority(*r.Priority).Valid() {
		fields["priority"] = priorityHint
	}
	if r.EstimatedHours != nil && *r.EstimatedHours < 0 {
		fields["estimated_hours"] = "must be greater than or equal to 0"
	}
	if r.ActualHours != nil && *r.ActualHours < 0 {
		fields["actual_hours"] = "must be greater than or equal to 0"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	fields := map[string]string{}

	if r.Title != nil && !lengthBetween(*r.Title, 1, 200) {
		fields["title"] = "must be between 1 and 200 characters"
	}
	if r.Description.Set && r.Description.Valid && !lengthBetween(r.Description.Value, 0, 1000) {
		fields["description"] = "must be at most 1000 characters"
	}
	if r.Status != nil && !constants.TaskStatus(*r.Status).Valid() {
		fields["status"] = statusHint
	}
	if r.Priority != nil && !constants.TaskPriority(*r.Priority).Valid() {
		fields["priority"] = priorityHint
	}
	if r.EstimatedHours.Set && r.EstimatedHours.Valid && r.EstimatedHours.Value < 0 {
		fields["estimated_hours"] = "must be greater than or equal to 0"
	}
	if r.ActualHours.Set && r.ActualHours.Valid && r.ActualHours.Value < 0 {
		fields["actual_hours"] = "must be greater than or equal to 0"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
