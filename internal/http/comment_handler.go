package http

import (
	"github.com/labstack/echo/v4"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	"task-manager-api.com/task-manager-api/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c echo.Context) error {
	fields := map[string]string{}
	skip, limit := parsePagination(c, fields)
	if len(fields) > 0 {
		return respondError(c, apperrors.NewValidation(fields))
	}

	comments, err := h.commentService.ListComments(c.Request().Context(), skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewCommentResponses(comments))
}

func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := parseID(c, "comment")
	if err != nil {
		return respondError(c, err)
	}

	comment, err := h.commentService.GetComment(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewCommentDetailResponse(comment))
}

func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req dto.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateCreateCommentRequest(&req); err != nil {
		return respondError(c, err)
	}

	comment, err := h.commentService.CreateComment(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewCommentResponse(comment))
}

func (h *CommentHandler) UpdateComment(c echo.Context) error {
	id, err := parseID(c, "comment")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateUpdateCommentRequest(&req); err != nil {
		return respondError(c, err)
	}

	comment, err := h.commentService.UpdateComment(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewCommentResponse(comment))
}

func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := parseID(c, "comment")
	if err != nil {
		return respondError(c, err)
	}

	comment, err := h.commentService.DeleteComment(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewCommentResponse(comment))
}
