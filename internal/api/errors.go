package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/somshrestha/inflo-tech-test/internal/apperrors"
)

// MsgUnexpectedError is the only message clients see for unhandled errors
const MsgUnexpectedError = "An unexpected error occurred. Please try again later."

// ErrorResponse is the JSON body of every API error
type ErrorResponse struct {
	Message string            `json:"message"`
	Detail  string            `json:"detail,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ErrorMiddleware translates the last error a handler attached with
// c.Error into a JSON response. Details are exposed only in development.
func ErrorMiddleware(logger *zap.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := translateError(err, development)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Unhandled error", fields...)
		} else {
			logger.Info("Request failed", fields...)
		}

		c.JSON(status, body)
	}
}

func translateError(err error, development bool) (int, ErrorResponse) {
	var detail string
	if development {
		detail = err.Error()
	}

	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, ErrorResponse{Message: notFound.Message, Detail: detail}
	}

	var invalid *apperrors.ValidationError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest, ErrorResponse{
			Message: "One or more validation errors occurred.",
			Detail:  detail,
			Errors:  invalid.Fields,
		}
	}

	var bad *badRequestError
	if errors.As(err, &bad) {
		return http.StatusBadRequest, ErrorResponse{Message: bad.message, Detail: detail}
	}

	return http.StatusInternalServerError, ErrorResponse{Message: MsgUnexpectedError, Detail: detail}
}

// RecoveryMiddleware turns a panic into the generic 500 body
func RecoveryMiddleware(logger *zap.Logger, development bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Recovered from panic",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered))

		body := ErrorResponse{Message: MsgUnexpectedError}
		if development {
			body.Detail = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}

// badRequestError is a malformed request that never reached a service
type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string {
	return e.message
}

func badRequest(format string, args ...any) error {
	return &badRequestError{message: fmt.Sprintf(format, args...)}
}
