package response

import (
	"errors"
	"net/http"

	apperrors "playpark/pkg/errors"
	"playpark/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success writes the payload directly: list endpoints return the bare
// sequence, single-record endpoints return the bare record.
func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
		})
	}

	logger.Error("unclassified handler error: %v", err)
	return c.JSON(http.StatusInternalServerError, ErrorInfo{
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	})
}
