package middleware

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/tourhive/tourhive/internal/errors"
)

// ErrorHandlerMiddleware converts errors attached via c.Error into the
// standard JSON error response, mapping error marks to HTTP status codes.
func ErrorHandlerMiddleware(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
}
