package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

func respondOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, dto.Envelope{
		Success: true,
		Message: "OK",
		Data:    data,
	})
}

func respondError(c echo.Context, err error) error {
	var valErr *apperrors.ValidationException
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusUnprocessableEntity, dto.Envelope{
			Success: false,
			Message: valErr.Error(),
			Data:    valErr.Fields,
		})
	}

	code := apperrors.StatusCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}
	return c.JSON(code, dto.Envelope{
		Success: false,
		Message: message,
	})
}

var errInvalidJSON = &apperrors.Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

func parseID(c echo.Context, entity string) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, &apperrors.Exception{
			Message:    "invalid " + entity + " id",
			StatusCode: http.StatusBadRequest,
		}
	}
	return uint(id), nil
}

// parsePagination reads skip/limit query params, recording violations in
// fields and falling back to the defaults of skip=0, limit=10.
func parsePagination(c echo.Context, fields map[string]string) (int, int) {
	skip, limit := 0, 10

	if raw := c.QueryParam("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			fields["skip"] = "must be an integer greater than or equal to 0"
		} else {
			skip = v
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 100 {
			fields["limit"] = "must be an integer between 1 and 100"
		} else {
			limit = v
		}
	}
	return skip, limit
}
