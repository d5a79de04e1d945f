package http

import (
	"github.com/labstack/echo/v4"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
	"task-manager-api.com/task-manager-api/internal/http/validators"
	"task-manager-api.com/task-manager-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	fields := map[string]string{}
	skip, limit := parsePagination(c, fields)
	if len(fields) > 0 {
		return respondError(c, apperrors.NewValidation(fields))
	}

	users, err := h.userService.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewUserResponses(users))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewUserDetailResponse(user))
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateCreateUserRequest(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errInvalidJSON)
	}
	if err := validators.ValidateUpdateUserRequest(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewUserResponse(user))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.NewUserResponse(user))
}
