package validators

import (
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

func ValidateCreateTagRequest(r *dto.CreateTagRequest) error {
	fields := map[string]string{}

	if !lengthBetween(r.Name, 1, 50) {
		fields["name"] = "must be between 1 and 50 characters"
	}
	if r.Color != nil && !colorPattern.MatchString(*r.Color) {
		fields["color"] = "must be a 6-digit hex color like #3498db"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateUpdateTagRequest(r *dto.UpdateTagRequest) error {
	fields := map[string]string{}

	if r.Name != nil && !lengthBetween(*r.Name, 1, 50) {
		fields["name"] = "must be between 1 and 50 characters"
	}
	if r.Color != nil && !colorPattern.MatchString(*r.Color) {
		fields["color"] = "must be a 6-digit hex color like #3498db"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
