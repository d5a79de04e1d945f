package http

import (
	"github.com/labstack/echo/v4"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	"task-manager-api.com/task-manager-api/internal/services"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) ListTags(c echo.Context) error {
	fields := map[string]string{}
	skip, limit := parsePagination(c, fields)
	if len(fields) > 0 {
		return respondError(c, apperrors.NewValidation(fields))
	}

	tags, err := h.tagService.ListTags(c.Request().Context(), skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTagResponses(tags))
}

func (h *TagHandler) GetTag(c echo.Context) error {
	id, err := parseID(c, "tag")
	if err != nil {
		return respondError(c, err)
	}

	tag, err := h.tagService.GetTag(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTagDetailResponse(tag))
}

func (h *TagHandler) CreateTag(c echo.Context) error {
	var req dto.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateCreateTagRequest(&req); err != nil {
		return respondError(c, err)
	}

	tag, err := h.tagService.CreateTag(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTagResponse(tag))
}

func (h *TagHandler) UpdateTag(c echo.Context) error {
	id, err := parseID(c, "tag")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateTagRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateUpdateTagRequest(&req); err != nil {
		return respondError(c, err)
	}

	tag, err := h.tagService.UpdateTag(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTagResponse(tag))
}

func (h *TagHandler) DeleteTag(c echo.Context) error {
	id, err := parseID(c, "tag")
	if err != nil {
		return respondError(c, err)
	}

	tag, err := h.tagService.DeleteTag(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewTagResponse(tag))
}
