package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio-contact-api/internal/delivery/http/response"
	"portfolio-contact-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error.
// Internal causes are logged, never sent to the client.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		reqID, _ := c.Get(response.RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				log.ErrorContext(c.Request.Context(), "Failed to handle request",
					"path", c.FullPath(),
					"request_id", reqID,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		log.ErrorContext(c.Request.Context(), "Internal Server Error",
			"path", c.FullPath(),
			"request_id", reqID,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
