package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leganyst/barbershop-booking/internal/auth"
	"github.com/Leganyst/barbershop-booking/internal/model"
	"github.com/Leganyst/barbershop-booking/internal/repository"
	"github.com/Leganyst/barbershop-booking/internal/service"
)

// Ключи контекста запроса.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// JWTAuth проверяет Bearer-токен и кладёт ID и роль пользователя
// в контекст. Деактивированные аккаунты отсекаются здесь же.
func JWTAuth(issuer *auth.TokenIssuer, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		userID, _, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if err := service.CheckAccountActive(user); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is inactive"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// RequireRole пускает дальше только перечисленные роли.
func RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ContextUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		role, _ := val.(model.UserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// UserID достаёт ID аутентифицированного пользователя из контекста.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	val, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// UserRole достаёт роль аутентифицированного пользователя из контекста.
func UserRole(c *gin.Context) model.UserRole {
	val, ok := c.Get(ContextUserRole)
	if !ok {
		return ""
	}
	role, _ := val.(model.UserRole)
	return role
}
