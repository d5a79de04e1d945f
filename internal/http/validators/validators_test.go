package validators

import (
	"errors"
	"strings"
	"testing"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

func violations(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	var valErr *apperrors.ValidationException
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationException, got %T", err)
	}
	return valErr.Fields
}

func TestValidateCreateTaskRequest_ListsAllViolations(t *testing.T) {
	badStatus := "done"
	hours := -1.0
	req := &dto.CreateTaskRequest{
		Title:          strings.Repeat("x", 201),
		Status:         &badStatus,
		EstimatedHours: &hours,
	}

	fields := violations(t, ValidateCreateTaskRequest(req))
	for _, key := range []string{"title", "status", "estimated_hours"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing violation for %q in %v", key, fields)
		}
	}
	if len(fields) != 3 {
		t.Errorf("expected exactly 3 violations, got %v", fields)
	}
}

func TestValidateCreateTaskRequest_EmptyTitleRejected(t *testing.T) {
	fields := violations(t, ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: ""}))
	if _, ok := fields["title"]; !ok {
		t.Errorf("expected title violation, got %v", fields)
	}
}

func TestValidateCreateTaskRequest_ValidPasses(t *testing.T) {
	status := "in_progress"
	priority := "urgent"
	hours := 0.0
	req := &dto.CreateTaskRequest{
		Title:          "Ship it",
		Status:         &status,
		Priority:       &priority,
		EstimatedHours: &hours,
	}
	if err := ValidateCreateTaskRequest(req); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidateUpdateTaskRequest_NullableFieldsSkipNull(t *testing.T) {
	// An explicit null clears the field and must not be range-checked.
	req := &dto.UpdateTaskRequest{
		EstimatedHours: dto.Optional[float64]{Set: true, Valid: false},
	}
	if err := ValidateUpdateTaskRequest(req); err != nil {
		t.Errorf("null must pass validation, got %v", err)
	}

	req = &dto.UpdateTaskRequest{
		EstimatedHours: dto.Optional[float64]{Set: true, Valid: true, Value: -0.5},
	}
	fields := violations(t, ValidateUpdateTaskRequest(req))
	if _, ok := fields["estimated_hours"]; !ok {
		t.Errorf("expected estimated_hours violation, got %v", fields)
	}
}

func TestValidateCreateUserRequest(t *testing.T) {
	fields := violations(t, ValidateCreateUserRequest(&dto.CreateUserRequest{
		Username: "ab",
		Email:    "not-an-email",
	}))
	if _, ok := fields["username"]; !ok {
		t.Errorf("expected username violation, got %v", fields)
	}
	if _, ok := fields["email"]; !ok {
		t.Errorf("expected email violation, got %v", fields)
	}

	if err := ValidateCreateUserRequest(&dto.CreateUserRequest{
		Username: "john_doe",
		Email:    "john@example.com",
	}); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidateCreateTagRequest_ColorPattern(t *testing.T) {
	for _, color := range []string{"#12345", "3498db", "#34g8db", "#3498DBff"} {
		c := color
		fields := violations(t, ValidateCreateTagRequest(&dto.CreateTagRequest{Name: "Bug", Color: &c}))
		if _, ok := fields["color"]; !ok {
			t.Errorf("expected color violation for %q, got %v", color, fields)
		}
	}

	good := "#3498DB"
	if err := ValidateCreateTagRequest(&dto.CreateTagRequest{Name: "Bug", Color: &good}); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidateCreateCommentRequest_ContentBounds(t *testing.T) {
	fields := violations(t, ValidateCreateCommentRequest(&dto.CreateCommentRequest{
		Content: "",
		TaskID:  1, AuthorID: 1,
	}))
	if _, ok := fields["content"]; !ok {
		t.Errorf("expected content violation, got %v", fields)
	}

	fields = violations(t, ValidateCreateCommentRequest(&dto.CreateCommentRequest{
		Content: strings.Repeat("y", 1001),
		TaskID:  1, AuthorID: 1,
	}))
	if _, ok := fields["content"]; !ok {
		t.Errorf("expected content violation, got %v", fields)
	}
}
