package rmiddleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/pkg/utils"
)

// RoleMiddleware enforces the role gate: a missing subject is 401, a
// present subject without one of the required roles is 403.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := middleware.GetCurrentUser(c)
		if err != nil {
			utils.UnauthorizedJSON(c, "Debes iniciar sesión primero")
			c.Abort()
			return
		}

		for _, role := range requiredRoles {
			if strings.EqualFold(u.Role, role) {
				c.Next()
				return
			}
		}

		utils.ForbiddenJSON(c, "Se requiere rol: "+strings.Join(requiredRoles, " o "))
		c.Abort()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access.
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("admin")
}
