package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/orator-app/speech-coach/errors"
	dto "github.com/orator-app/speech-coach/internal/adapter/dto/analysis"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleError centralizes error handling and logging. Every failure renders
// as a single-field {"error": ...} body; the HTTP status comes from the
// AppError in the chain, defaulting to 500.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	status := http.StatusInternalServerError

	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		status = appErr.HTTPCode
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", getRequestID(c)),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}
	} else if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
