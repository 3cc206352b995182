package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jayantelango/ai-driven-meeting-summarizer/errors"
	"github.com/jayantelango/ai-driven-meeting-summarizer/internal/adapter/dto/common"
)

// RespondError maps an error to a JSON error response. AppError values
// carry their own HTTP status, anything else becomes a 500.
func RespondError(c echo.Context, logger *zap.Logger, err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError && logger != nil {
			logger.Error("❌ Request failed",
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Error:   appErr.Message,
			Code:    appErr.Code.String(),
			Details: appErr.Details,
		})
	}

	if logger != nil {
		logger.Error("❌ Unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Error: "Internal server error",
		Code:  errors.ErrorCode_INTERNAL.String(),
	})
}

// BindAndValidate decodes the request body and runs struct validation
func BindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(err.Error())
	}
	return nil
}

// ParseUUIDParam parses a path parameter as a UUID
func ParseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid " + name)
	}
	return id, nil
}

// ParseUUIDQuery parses a raw query value as a UUID
func ParseUUIDQuery(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("invalid " + name)
	}
	return id, nil
}

// ParsePagination reads limit and offset query parameters with defaults
func ParsePagination(c echo.Context) (limit, offset int) {
	limit = intQuery(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}
	offset = intQuery(c, "offset", 0)
	return limit, offset
}

func intQuery(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
