package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/config"
	"github.com/dmartinezc/canchas-api/internal/middleware"
)

// RegisterAuthRoutes sets up the authentication endpoints.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", controller.Register)
		authRoutes.POST("/login", controller.Login)

		protected := authRoutes.Group("")
		protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
		{
			protected.GET("/verify", controller.Verify)
			protected.GET("/me", controller.Me)
			protected.POST("/logout", controller.Logout)
		}
	}
}
