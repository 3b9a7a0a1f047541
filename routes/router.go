package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dmartinezc/canchas-api/config"
	"github.com/dmartinezc/canchas-api/internal/auth"
	"github.com/dmartinezc/canchas-api/internal/cancha"
	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/internal/reserva"
	"github.com/dmartinezc/canchas-api/internal/user"
)

// SetupRoutes builds the gin engine with every API route mounted under /api.
func SetupRoutes() *gin.Engine {
	appConfig := config.GetConfig()
	db := config.DB

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if appConfig.App.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Uploaded avatars are served straight from disk.
	r.Static("/uploads", appConfig.App.UploadDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"nombre":  "API de Reserva de Canchas",
			"version": "1.0",
			"docs":    "/swagger/index.html",
		})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	auth.RegisterAuthRoutes(api, db, appConfig)
	cancha.RegisterCanchaRoutes(api, db, appConfig)
	reserva.RegisterReservaRoutes(api, db, appConfig)

	// The user package cannot pull in the auth middleware without an import
	// cycle, so its group is assembled here.
	usuarios := api.Group("/usuarios")
	usuarios.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		userController := user.NewUserController(user.NewUserRepository(db), appConfig)
		usuarios.GET("/perfil", userController.Perfil)
		usuarios.PUT("/perfil", userController.ActualizarPerfil)
		usuarios.PUT("/avatar", userController.SubirAvatar)
		usuarios.DELETE("/avatar", userController.EliminarAvatar)
		usuarios.PUT("/password", userController.CambiarPassword)
		usuarios.DELETE("/cuenta", userController.EliminarCuenta)
	}

	return r
}
