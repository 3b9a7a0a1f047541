package main

import (
	"log"

	"github.com/dmartinezc/canchas-api/config"
	_ "github.com/dmartinezc/canchas-api/docs"
	"github.com/dmartinezc/canchas-api/internal/cancha"
	"github.com/dmartinezc/canchas-api/internal/reserva"
	"github.com/dmartinezc/canchas-api/internal/user"
	"github.com/dmartinezc/canchas-api/routes"
)

// @title API de Reserva de Canchas
// @version 1.0
// @description API REST para gestión y reserva de canchas deportivas.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&cancha.Cancha{}, &cancha.Horario{},
		&reserva.Reserva{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
