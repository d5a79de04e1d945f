package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
	"task-manager-api.com/task-manager-api/internal/services"
)

func setupServer(t *testing.T) *echo.Echo {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Tag{},
		&model.Task{},
		&model.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	e := echo.New()
	Register(e,
		NewTaskHandler(services.NewTaskService(taskRepo, projectRepo, userRepo, tagRepo, commentRepo, nil)),
		NewProjectHandler(services.NewProjectService(projectRepo, userRepo)),
		NewUserHandler(services.NewUserService(userRepo)),
		NewTagHandler(services.NewTagService(tagRepo)),
		NewCommentHandler(services.NewCommentService(commentRepo, taskRepo, userRepo)),
		10000,
	)
	return e
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) (int, *envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not valid JSON: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, &env
}

func TestListTasksReturnsEnvelope(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodGet, "/tasks", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !env.Success || env.Message != "OK" {
		t.Errorf("unexpected envelope: %+v", env)
	}
	var tasks []json.RawMessage
	if err := json.Unmarshal(env.Data, &tasks); err != nil {
		t.Fatalf("data must be a list: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %d items", len(tasks))
	}
}

func TestGetTaskNotFoundEnvelope(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodGet, "/tasks/999", "")
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if env.Success {
		t.Error("not-found envelope must have success=false")
	}
	if env.Message != "Task not found" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestCreateTaskValidationLists422(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodPost, "/tasks", `{"title":"","estimated_hours":-1}`)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if env.Success {
		t.Error("validation envelope must have success=false")
	}

	var fields map[string]string
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		t.Fatalf("data must carry field violations: %v", err)
	}
	for _, key := range []string{"title", "estimated_hours"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing violation for %q in %v", key, fields)
		}
	}
}

func TestCreateTaskMalformedJSONIs400(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodPost, "/tasks", `{"title":`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Success {
		t.Error("error envelope must have success=false")
	}
}

func TestInvalidLimitIs422(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodGet, "/tasks?limit=0", "")
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	var fields map[string]string
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		t.Fatalf("data must carry field violations: %v", err)
	}
	if _, ok := fields["limit"]; !ok {
		t.Errorf("expected limit violation, got %v", fields)
	}
}

func TestInvalidIDIs400(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodGet, "/tasks/abc", "")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Message != "invalid task id" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestCreateThenGetTaskFlow(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodPost, "/tasks", `{"title":"Write docs","priority":"high"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}

	var created struct {
		ID       uint   `json:"id"`
		Title    string `json:"title"`
		Status   string `json:"status"`
		Priority string `json:"priority"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("failed to decode created task: %v", err)
	}
	if created.ID == 0 || created.Title != "Write docs" {
		t.Fatalf("unexpected created task: %+v", created)
	}
	if created.Status != "pending" || created.Priority != "high" {
		t.Errorf("defaults not applied: %+v", created)
	}

	code, env = doJSON(t, e, http.MethodGet, "/tasks/1", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var detail struct {
		ID       uint              `json:"id"`
		Tags     []json.RawMessage `json:"tags"`
		Subtasks []json.RawMessage `json:"subtasks"`
		Project  json.RawMessage   `json:"project"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatalf("failed to decode detail: %v", err)
	}
	if detail.ID != created.ID {
		t.Errorf("expected task %d, got %d", created.ID, detail.ID)
	}
	if detail.Tags == nil || detail.Subtasks == nil {
		t.Error("detail projection must carry empty lists, not null")
	}
}

func TestStatsSummaryShape(t *testing.T) {
	e := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks/stats/summary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// The summary is a bare document, not wrapped in the envelope.
	var stats map[string]json.Number
	dec := json.NewDecoder(strings.NewReader(rec.Body.String()))
	dec.UseNumber()
	if err := dec.Decode(&stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	for _, key := range []string{"total_tasks", "completed_tasks", "pending_tasks", "in_progress_tasks", "completion_rate"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("missing key %q in %v", key, stats)
		}
	}
	if _, ok := stats["success"]; ok {
		t.Error("stats must not be enveloped")
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	e := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id header")
	}
}

func TestCreateUserFlow(t *testing.T) {
	e := setupServer(t)

	code, env := doJSON(t, e, http.MethodPost, "/users", `{"username":"john_doe","email":"john@example.com"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}

	code, env = doJSON(t, e, http.MethodPost, "/users", `{"username":"jd","email":"bad"}`)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	var fields map[string]string
	if err := json.Unmarshal(env.Data, &fields); err != nil {
		t.Fatalf("data must carry field violations: %v", err)
	}
	if len(fields) != 2 {
		t.Errorf("expected username and email violations, got %v", fields)
	}
}
