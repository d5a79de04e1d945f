package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-manager-api.com/task-manager-api/internal/constants"
	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
	"task-manager-api.com/task-manager-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	fields := map[string]string{}
	skip, limit := parsePagination(c, fields)

	var filter repository.TaskFilter
	if raw := c.QueryParam("status"); raw != "" {
		status := constants.TaskStatus(raw)
		if !status.Valid() {
			fields["status"] = "must be one of pending, in_progress, completed, cancelled"
		} else {
			filter.Status = &status
		}
	}
	if raw := c.QueryParam("priority"); raw != "" {
		priority := constants.TaskPriority(raw)
		if !priority.Valid() {
			fields["priority"] = "must be one of low, medium, high, urgent"
		} else {
			filter.Priority = &priority
		}
	}
	if raw := c.QueryParam("project_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fields["project_id"] = "must be an integer"
		} else {
			id := uint(v)
			filter.ProjectID = &id
		}
	}
	if raw := c.QueryParam("assignee_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fields["assignee_id"] = "must be an integer"
		} else {
			id := uint(v)
			filter.AssigneeID = &id
		}
	}

	if len(fields) > 0 {
		return respondError(c, apperrors.NewValidation(fields))
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter, skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTaskResponses(tasks))
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := parseID(c, "task")
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTaskDetailResponse(task))
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := parseID(c, "task")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := parseID(c, "task")
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTaskResponse(task))
}

func (h *TaskHandler) ListSubtasks(c echo.Context) error {
	id, err := parseID(c, "task")
	if err != nil {
		return respondError(c, err)
	}

	subtasks, err := h.taskService.ListSubtasks(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTaskResponses(subtasks))
}

func (h *TaskHandler) ListComments(c echo.Context) error {
	id, err := parseID(c, "task")
	if err != nil {
		return respondError(c, err)
	}

	comments, err := h.taskService.ListComments(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewCommentResponses(comments))
}

// Stats returns the summary document directly, without the envelope.
func (h *TaskHandler) Stats(c echo.Context) error {
	stats, err := h.taskService.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
