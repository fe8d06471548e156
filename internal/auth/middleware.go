package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"clubsphere/internal/api"
	"clubsphere/internal/logger"

	"github.com/gin-gonic/gin"
)

const emailKey = "user_email"

// RoleLookup resolves the stored role of a principal. A principal without a
// user record yields an error wrapping ErrNoRole.
type RoleLookup interface {
	GetRole(ctx context.Context, email string) (string, error)
}

func AuthMiddleware(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			api.AbortWith(c, http.StatusUnauthorized, "Unauthorized Access!")
			return
		}

		token := strings.TrimSpace(parts[1])
		if token == "" {
			api.AbortWith(c, http.StatusUnauthorized, "Unauthorized Access!")
			return
		}

		email, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Debug("token verification failed", "error", err, "path", c.FullPath())
			api.AbortWith(c, http.StatusUnauthorized, "Unauthorized Access!")
			return
		}

		SetEmail(c, email)
		c.Next()
	}
}

// RequireRole admits the request only when the stored role equals role.
// Roles are not hierarchical.
func RequireRole(roles RoleLookup, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := GetEmail(c)
		if !ok {
			api.AbortWith(c, http.StatusUnauthorized, "Unauthorized Access!")
			return
		}

		current, err := roles.GetRole(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, ErrNoRole) {
				api.AbortWith(c, http.StatusForbidden, forbiddenMessage(role))
				return
			}
			logger.Error("role lookup failed", "error", err, "email", email)
			api.AbortWith(c, http.StatusInternalServerError, "Internal server error.")
			return
		}

		if current != role {
			api.AbortWith(c, http.StatusForbidden, forbiddenMessage(role))
			return
		}

		c.Next()
	}
}

func forbiddenMessage(role string) string {
	switch role {
	case RoleAdmin:
		return "Forbidden access: Not an Admin."
	case RoleClubManager:
		return "Forbidden access: Not a club manager."
	default:
		return "Forbidden access: Not a " + role + "."
	}
}

func RequireAdmin(roles RoleLookup) gin.HandlerFunc {
	return RequireRole(roles, RoleAdmin)
}

func RequireManager(roles RoleLookup) gin.HandlerFunc {
	return RequireRole(roles, RoleClubManager)
}

func RequireMember(roles RoleLookup) gin.HandlerFunc {
	return RequireRole(roles, RoleMember)
}

func GetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(emailKey)
	if !exists {
		return "", false
	}

	email, ok := v.(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// SetEmail stores a verified principal on the context.
func SetEmail(c *gin.Context, email string) {
	c.Set(emailKey, email)
}
