package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	ierr "github.com/tourhive/tourhive/internal/errors"
)

// RateLimitMiddleware applies a process-wide token bucket to dashboard
// requests. Aggregations scan every booking in the window, so a runaway
// client can otherwise saturate the database.
func RateLimitMiddleware(rps rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			err := ierr.NewError("too many requests").
				WithHint("Slow down and retry shortly").
				Mark(ierr.ErrSystem)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ierr.NewErrorResponse(err))
			return
		}
		c.Next()
	}
}
