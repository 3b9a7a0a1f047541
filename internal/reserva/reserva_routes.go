package reserva

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/config"
	"github.com/dmartinezc/canchas-api/internal/cancha"
	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/pkg/rmiddleware"
)

// RegisterReservaRoutes sets up the reserva endpoints.
func RegisterReservaRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewReservaRepository(db)
	canchaRepo := cancha.NewCanchaRepository(db)
	controller := NewReservaController(repo, canchaRepo)

	reservas := router.Group("/reservas")
	reservas.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		reservas.POST("", controller.CrearReserva)
		reservas.GET("/mis-reservas", controller.MisReservas)
		reservas.GET("/mis-canchas", rmiddleware.AdminMiddleware(), controller.ReservasDeMisCanchas)
		reservas.PUT("/:id", controller.ActualizarReserva)
		reservas.PATCH("/:id/cancelar", controller.CancelarReserva)
	}
}
