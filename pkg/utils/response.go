package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "employee-system/pkg/errors"
)

// HttpResponse is the uniform envelope every endpoint returns.
// Success: {success: true, data, count?}; failure: {success: false, message}.
type HttpResponse struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func SuccessResponse(ctx echo.Context, code int, data interface{}) error {
	if data == nil {
		data = struct{}{}
	}
	return ctx.JSON(code, &HttpResponse{
		Success: true,
		Data:    data,
	})
}

func SuccessListResponse(ctx echo.Context, data interface{}, count int) error {
	return ctx.JSON(http.StatusOK, &HttpResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// ErrorResponse converts service errors to the envelope. Anything that is not
// an explicit HttpError is logged and degraded to a generic 500 so internal
// detail never leaks to the client.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*apperrors.HttpError); ok {
		code = httpErr.Code
		message = httpErr.Message
		if httpErr.Err != nil {
			logger.Warn("request failed",
				zap.Int("status", code),
				zap.String("message", message),
				zap.Error(httpErr.Err),
			)
		}
	} else {
		logger.Error("unhandled error", zap.Error(err))
	}

	return ctx.JSON(code, &HttpResponse{
		Success: false,
		Message: message,
	})
}
