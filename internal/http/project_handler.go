package http

import (
	"github.com/labstack/echo/v4"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	"task-manager-api.com/task-manager-api/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	fields := map[string]string{}
	skip, limit := parsePagination(c, fields)
	if len(fields) > 0 {
		return respondError(c, apperrors.NewValidation(fields))
	}

	projects, err := h.projectService.ListProjects(c.Request().Context(), skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewProjectResponses(projects))
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := parseID(c, "project")
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.projectService.GetProject(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewProjectDetailResponse(project))
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateCreateProjectRequest(&req); err != nil {
		return respondError(c, err)
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewProjectResponse(project))
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := parseID(c, "project")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateUpdateProjectRequest(&req); err != nil {
		return respondError(c, err)
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := parseID(c, "project")
	if err != nil {
		return respondError(c, err)
	}

	project, err := h.projectService.DeleteProject(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewProjectResponse(project))
}
