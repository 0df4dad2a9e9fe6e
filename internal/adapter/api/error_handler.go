package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"playpark/pkg/logger"
)

// ErrorHandler is the catch-all for failures no handler translated itself.
// The detail is logged server-side; the caller only ever sees a generic 500,
// except for echo's own routing errors (404/405) which keep their status.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "An unexpected error occurred"

	if httpErr, ok := err.(*echo.HTTPError); ok && httpErr.Code < http.StatusInternalServerError {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		logger.Error("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(status); err != nil {
			logger.Error("failed to write error response: %v", err)
		}
		return
	}

	if err := c.JSON(status, map[string]string{"message": message}); err != nil {
		logger.Error("failed to write error response: %v", err)
	}
}
