package validators

import (
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

func ValidateCreateUserRequest(r *dto.CreateUserRequest) error {
	fields := map[string]string{}

	if !lengthBetween(r.Username, 3, 50) {
		fields["username"] = "must be between 3 and 50 characters"
	}
	if !emailPattern.MatchString(r.Email) {
		fields["email"] = "must be a valid email address"
	}
	if r.FullName != nil && !lengthBetween(*r.FullName, 0, 100) {
		fields["full_name"] = "must be at most 100 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateUpdateUserRequest(r *dto.UpdateUserRequest) error {
	fields := map[string]string{}

	if r.Username != nil && !lengthBetween(*r.Username, 3, 50) {
		fields["username"] = "must be between 3 and 50 characters"
	}
	if r.Email != nil && !emailPattern.MatchString(*r.Email) {
		fields["email"] = "must be a valid email address"
	}
	if r.FullName.Set && r.FullName.Valid && !lengthBetween(r.FullName.Value, 0, 100) {
		fields["full_name"] = "must be at most 100 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
