package validators

import (
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

func ValidateCreateCommentRequest(r *dto.CreateCommentRequest) error {
	fields := map[string]string{}

	if !lengthBetween(r.Content, 1, 1000) {
		fields["content"] = "must be between 1 and 1000 characters"
	}
	if r.TaskID == 0 {
		fields["task_id"] = "is required"
	}
	if r.AuthorID == 0 {
		fields["author_id"] = "is required"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateUpdateCommentRequest(r *dto.UpdateCommentRequest) error {
	fields := map[string]string{}

	if r.Content != nil && !lengthBetween(*r.Content, 1, 1000) {
		fields["content"] = "must be between 1 and 1000 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
