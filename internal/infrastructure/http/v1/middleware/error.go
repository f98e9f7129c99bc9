package middleware

import (
	"github.com/gin-gonic/gin"

	"puntoventa/internal/core/apperror"
	"puntoventa/pkg/logger"
)

// ErrorHandler middleware converts application errors to HTTP responses.
// Handlers attach errors via c.Error(); this runs after the chain and
// writes the final JSON body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Response already written by handler
		if c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		ctx := c.Request.Context()

		if appErr, ok := apperror.AsAppError(err); ok {
			if appErr.Err != nil {
				logger.Error(ctx, "request failed",
					"code", appErr.Code,
					"message", appErr.Message,
					"cause", appErr.Err.Error(),
				)
			} else {
				logger.Warn(ctx, "request failed",
					"code", appErr.Code,
					"message", appErr.Message,
				)
			}

			body := gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			}
			if len(appErr.Details) > 0 {
				body["details"] = appErr.Details
			}
			c.JSON(appErr.HTTPStatus, body)
			return
		}

		// Unknown error, never leak internals
		logger.Error(ctx, "unhandled error", "error", err.Error())
		c.JSON(500, gin.H{
			"code":    apperror.CodeInternal,
			"message": "internal server error",
			"details": gin.H{"request_id": c.GetString("request_id")},
		})
	}
}
