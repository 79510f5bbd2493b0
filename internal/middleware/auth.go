package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/upb-facilities/cleaning-records/internal/auth"
	"github.com/upb-facilities/cleaning-records/internal/httperr"
	"github.com/upb-facilities/cleaning-records/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// UserLoader resolves the token subject to the current user row.
type UserLoader interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware validates the bearer token and reloads the user so that a
// deactivated account loses access before its token expires.
func AuthMiddleware(tokens *auth.TokenManager, users UserLoader, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header", "Token de acceso requerido")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header", "Token de acceso requerido")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "invalid_token", "Token inválido o expirado")
			return
		}
		userID, _ := claims.UserID()

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortUnauthorized(c, "user_not_found", "Usuario no encontrado o inactivo")
			return
		}
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("load authenticated user")
			httperr.Internal(c, "internal_error", "Error interno del servidor.")
			c.Abort()
			return
		}
		if !user.Active {
			abortUnauthorized(c, "user_inactive", "Usuario no encontrado o inactivo")
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)

		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != models.RoleAdmin {
			httperr.Forbidden(c, "admin_required", "Acceso denegado. Se requieren permisos de administrador.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	httperr.Unauthorized(c, code, message)
	c.Abort()
}

// CurrentUserID returns the authenticated user id set by AuthMiddleware.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}
