package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/internal/policy"
	"github.com/dmartinezc/canchas-api/internal/user"
	"github.com/dmartinezc/canchas-api/pkg/token"
	"github.com/dmartinezc/canchas-api/pkg/utils"
)

const (
	AuthUserKey = "auth_user"
)

// AuthMiddleware validates the bearer token, loads the account behind it
// and rejects deactivated accounts before any role or ownership check
// runs. The loaded user is stored in the request context.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.UnauthorizedJSON(c, "Token de acceso requerido")
			c.Abort()
			return
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if tokenString == "" {
			utils.UnauthorizedJSON(c, "Token de acceso requerido")
			c.Abort()
			return
		}

		claims, err := token.ValidateJWT(tokenString, jwtSecret)
		if err != nil {
			utils.UnauthorizedJSON(c, "Token inválido o expirado")
			c.Abort()
			return
		}

		var u user.User
		if err := db.First(&u, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.UnauthorizedJSON(c, "Usuario no encontrado")
			} else {
				utils.ServerErrorJSON(c)
			}
			c.Abort()
			return
		}

		if u.Estado == policy.EstadoInactivo {
			utils.UnauthorizedJSON(c, "Cuenta desactivada. Contacta al administrador")
			c.Abort()
			return
		}

		c.Set(AuthUserKey, &u)
		c.Next()
	}
}

// GetCurrentUser extracts the authenticated user from the Gin context.
func GetCurrentUser(c *gin.Context) (*user.User, error) {
	v, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, errors.New("user not found in context")
	}
	u, ok := v.(*user.User)
	if !ok {
		return nil, errors.New("user in context has unexpected type")
	}
	return u, nil
}
