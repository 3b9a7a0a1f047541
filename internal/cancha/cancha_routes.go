package cancha

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/config"
	mw "github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/pkg/rmiddleware"
)

func RegisterCanchaRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewCanchaRepository(db)
	controller := NewCanchaController(repo, DefaultOptions())

	canchas := router.Group("/canchas")
	{
		// Public routes, no authentication required.
		canchas.GET("/publicas", controller.CanchasPublicas)
		canchas.GET("/publica/:id", controller.CanchaPublica)
		canchas.GET("/opciones", controller.Opciones)
	}

	admin := router.Group("/canchas")
	admin.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	admin.Use(rmiddleware.AdminMiddleware())
	{
		admin.POST("", controller.CrearCancha)
		admin.GET("/mis-canchas", controller.MisCanchas)
		admin.GET("/:id", controller.CanchaPorID)
		admin.PUT("/:id", controller.EditarCancha)
		admin.DELETE("/:id", controller.EliminarCancha)
	}
}
