package middlewares

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/api/models"
	"book-catalog/internal/auth"
	"book-catalog/pkg/logger"
)

// Context keys set by AuthRequired
const (
	ContextUsername = "username"
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// AccessTokenCookie is the cookie carrying the bearer token for page requests
const AccessTokenCookie = "access_token"

// AdminRole gates the administrative endpoints
const AdminRole = "admin"

// TokenParser resolves a bearer token into identity claims
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// AuthRequired validates the request's bearer token and stores the resulting
// identity in the gin context. The context is rebuilt from the token on every
// request; nothing is cached across calls.
func AuthRequired(tokens TokenParser, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(models.ErrAuthenticationFailed.StatusCode,
				models.ErrAuthenticationFailed)
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			// The two failure classes are logged separately but answered
			// identically: a 401 either way.
			if errors.Is(err, auth.ErrIncompleteClaims) {
				log.Warning("Token rejected: claims incomplete")
			} else {
				log.Warning("Token rejected: %v", err)
			}
			c.AbortWithStatusJSON(models.ErrTokenValidationFailed.StatusCode,
				models.ErrTokenValidationFailed)
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RoleRequired ensures the authenticated user carries exactly the given role.
// A mismatch answers with the same body as a missing token so clients cannot
// distinguish "not logged in" from "logged in without permission".
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(ContextUserRole)
		if !exists || userRole != role {
			c.AbortWithStatusJSON(models.ErrAuthenticationFailed.StatusCode,
				models.ErrAuthenticationFailed)
			return
		}
		c.Next()
	}
}

// AdminRequired ensures the authenticated user has the admin role
func AdminRequired() gin.HandlerFunc {
	return RoleRequired(AdminRole)
}

// extractToken pulls the bearer token from the Authorization header, falling
// back to the access-token cookie used by the page-rendering routes.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}
