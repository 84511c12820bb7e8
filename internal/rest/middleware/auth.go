package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/tourhive/tourhive/internal/config"
	ierr "github.com/tourhive/tourhive/internal/errors"
	"github.com/tourhive/tourhive/internal/types"
)

type authClaims struct {
	jwt.RegisteredClaims
	Role    string `json:"role"`
	OwnerID string `json:"owner_id"`
}

// AuthMiddleware verifies the platform bearer token and populates the
// request context with user id, role and the owner scope. Owner-role users
// are always scoped to themselves; admins may select an owner via the
// owner_id query parameter, or see all owners when it is omitted.
func AuthMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(types.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ierr.NewErrorf("unexpected signing method: %v", t.Header["alg"]).
					Mark(ierr.ErrPermissionDenied)
			}
			return []byte(cfg.Auth.Secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		role := types.UserRole(claims.Role)
		if !role.Valid() {
			abortUnauthorized(c, "Unknown role in token")
			return
		}

		ownerID := claims.OwnerID
		if role == types.UserRoleAdmin {
			ownerID = c.Query("owner_id")
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, types.CtxUserID, claims.Subject)
		ctx = context.WithValue(ctx, types.CtxUserRole, role)
		ctx = context.WithValue(ctx, types.CtxOwnerID, ownerID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, hint string) {
	err := ierr.NewError("unauthorized").
		WithHint(hint).
		Mark(ierr.ErrPermissionDenied)
	c.AbortWithStatusJSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
}
