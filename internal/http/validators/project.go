package validators

import (
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	fields := map[string]string{}

	if !lengthBetween(r.Name, 1, 100) {
		fields["name"] = "must be between 1 and 100 characters"
	}
	if r.Description != nil && !lengthBetween(*r.Description, 0, 500) {
		fields["description"] = "must be at most 500 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateUpdateProjectRequest(r *dto.UpdateProjectRequest) error {
	fields := map[string]string{}

	if r.Name != nil && !lengthBetween(*r.Name, 1, 100) {
		fields["name"] = "must be between 1 and 100 characters"
	}
	if r.Description.Set && r.Description.Valid && !lengthBetween(r.Description.Value, 0, 500) {
		fields["description"] = "must be at most 500 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
