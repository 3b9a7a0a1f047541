package reserva

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmartinezc/canchas-api/internal/booking"
	"github.com/dmartinezc/canchas-api/internal/cancha"
	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/internal/policy"
	"github.com/dmartinezc/canchas-api/pkg/utils"
)

// ReservaController handles reserva-related HTTP requests.
type ReservaController struct {
	repo    ReservaRepository
	canchas cancha.CanchaRepository
}

// NewReservaController creates a new reserva controller.
func NewReservaController(repo ReservaRepository, canchas cancha.CanchaRepository) *ReservaController {
	return &ReservaController{
		repo:    repo,
		canchas: canchas,
	}
}

// CrearReserva godoc
// @Summary Create a reserva
// @Description Book a cancha for a date, start time and duration. The price is derived from the cancha's hourly price unless supplied.
// @Tags reservas
// @Accept json
// @Produce json
// @Param reserva body ReservaInput true "Reserva information"
// @Success 201 {object} utils.APIResponse{data=ReservaResponse} "Reserva created"
// @Failure 400 {object} utils.APIResponse "Validation errors or cancha unavailable"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /reservas [post]
// @Security Bearer
func (c *ReservaController) CrearReserva(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	var input ReservaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}

	laCancha, err := c.canchas.GetByID(input.Cancha)
	if err != nil {
		log.Printf("cancha lookup failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	if laCancha == nil || !laCancha.Disponible() {
		utils.BadRequestJSON(ctx, "La cancha no está disponible")
		return
	}

	fecha, err := ParseFecha(input.Fecha)
	if err != nil {
		utils.BadRequestJSON(ctx, "Formato de fecha inválido")
		return
	}

	if errs := ValidarReserva(fecha, input.HoraInicio, input.Duracion, input.Participantes, input.MetodoPago); len(errs) > 0 {
		utils.ValidationErrorJSON(ctx, booking.Messages(errs))
		return
	}

	nueva := &Reserva{
		UsuarioID:     actor.ID,
		CanchaID:      laCancha.ID,
		Fecha:         fecha,
		HoraInicio:    input.HoraInicio,
		Duracion:      input.Duracion,
		Participantes: input.Participantes,
		Estado:        EstadoCompletada,
		MetodoPago:    input.MetodoPago,
		Precio:        booking.ComputePrice(laCancha.Precio, input.Duracion, 0),
	}

	if err := c.repo.Create(nueva); err != nil {
		log.Printf("create reserva failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	nueva.Usuario = *actor
	nueva.Cancha = *laCancha

	utils.CreatedJSON(ctx, "Reserva creada exitosamente", ToResponse(nueva))
}

// MisReservas godoc
// @Summary List own reservas
// @Description List the authenticated user's reservas, most recent date and start time first
// @Tags reservas
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]ReservaResponse} "List of reservas"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /reservas/mis-reservas [get]
// @Security Bearer
func (c *ReservaController) MisReservas(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	reservas, err := c.repo.ListByUsuario(actor.ID)
	if err != nil {
		log.Printf("list reservas failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	utils.SuccessJSON(ctx, "Reservas obtenidas", ToResponseList(reservas))
}

// ReservasDeMisCanchas godoc
// @Summary List reservas for owned canchas
// @Description List every reserva made against the authenticated admin's active canchas
// @Tags reservas
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]ReservaResponse} "List of reservas"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Admin role required"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /reservas/mis-canchas [get]
// @Security Bearer
func (c *ReservaController) ReservasDeMisCanchas(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	// Two-phase query: resolve the owned active cancha ids first, then
	// fetch their reservas.
	ids, err := c.canchas.OwnedActiveIDs(actor.ID)
	if err != nil {
		log.Printf("owned cancha ids lookup failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	reservas, err := c.repo.ListByCanchas(ids)
	if err != nil {
		log.Printf("list reservas by canchas failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	utils.SuccessJSON(ctx, "Reservas obtenidas", ToResponseList(reservas))
}

// ActualizarReserva godoc
// @Summary Update a reserva
// @Description Update one of the mutable fields of a reserva. Cancelled reservas are immutable. A changed cancha must be available.
// @Tags reservas
// @Accept json
// @Produce json
// @Param id path int true "Reserva ID"
// @Param reserva body ReservaUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=ReservaResponse} "Reserva updated"
// @Failure 400 {object} utils.APIResponse "Validation errors or cancelled reserva"
// @Failure 403 {object} utils.APIResponse "Not allowed to modify this reserva"
// @Failure 404 {object} utils.APIResponse "Reserva not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /reservas/{id} [put]
// @Security Bearer
func (c *ReservaController) ActualizarReserva(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "ID de reserva inválido")
		return
	}

	var input ReservaUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}

	existente, err := c.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("get reserva failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	if existente == nil {
		utils.NotFoundJSON(ctx, "Reserva no encontrada")
		return
	}

	if !policy.CanActOnReserva(actor.Subject(), existente.UsuarioID) {
		utils.ForbiddenJSON(ctx, "No tienes permisos para actualizar esta reserva")
		return
	}

	if existente.Estado == EstadoCancelada {
		utils.BadRequestJSON(ctx, "No se puede actualizar una reserva cancelada")
		return
	}

	merged := *existente

	if input.Cancha != nil && *input.Cancha != existente.CanchaID {
		nuevaCancha, err := c.canchas.GetByID(*input.Cancha)
		if err != nil {
			log.Printf("cancha lookup failed: %v", err)
			utils.ServerErrorJSON(ctx)
			return
		}
		if nuevaCancha == nil || !nuevaCancha.Disponible() {
			utils.BadRequestJSON(ctx, "La nueva cancha no está disponible")
			return
		}
		merged.CanchaID = nuevaCancha.ID
		merged.Cancha = *nuevaCancha
	}

	if input.Fecha != nil {
		fecha, err := ParseFecha(*input.Fecha)
		if err != nil {
			utils.BadRequestJSON(ctx, "Formato de fecha inválido")
			return
		}
		merged.Fecha = fecha
	}
	if input.HoraInicio != nil {
		merged.HoraInicio = *input.HoraInicio
	}
	if input.Duracion != nil {
		merged.Duracion = *input.Duracion
	}
	if input.Participantes != nil {
		merged.Participantes = *input.Participantes
	}
	if input.MetodoPago != nil {
		merged.MetodoPago = *input.MetodoPago
	}

	if errs := ValidarReserva(merged.Fecha, merged.HoraInicio, merged.Duracion, merged.Participantes, merged.MetodoPago); len(errs) > 0 {
		utils.ValidationErrorJSON(ctx, booking.Messages(errs))
		return
	}

	if err := c.repo.Update(&merged); err != nil {
		log.Printf("update reserva failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	utils.SuccessJSON(ctx, "Reserva actualizada exitosamente", ToResponse(&merged))
}

// CancelarReserva godoc
// @Summary Cancel a reserva
// @Description One-way transition to cancelada. Cancelling an already cancelled reserva is an error.
// @Tags reservas
// @Produce json
// @Param id path int true "Reserva ID"
// @Success 200 {object} utils.APIResponse "Reserva cancelled"
// @Failure 400 {object} utils.APIResponse "Already cancelled"
// @Failure 403 {object} utils.APIResponse "Not allowed to cancel this reserva"
// @Failure 404 {object} utils.APIResponse "Reserva not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /reservas/{id}/cancelar [patch]
// @Security Bearer
func (c *ReservaController) CancelarReserva(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "ID de reserva inválido")
		return
	}

	existente, err := c.repo.GetByID(uint(id))
	if err != nil {
		log.Printf("get reserva failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	if existente == nil {
		utils.NotFoundJSON(ctx, "Reserva no encontrada")
		return
	}

	if !policy.CanActOnReserva(actor.Subject(), existente.UsuarioID) {
		utils.ForbiddenJSON(ctx, "No tienes permisos para cancelar esta reserva")
		return
	}

	if existente.Estado == EstadoCancelada {
		utils.BadRequestJSON(ctx, "La reserva ya está cancelada")
		return
	}

	if err := c.repo.UpdateEstado(existente.ID, EstadoCancelada); err != nil {
		log.Printf("cancel reserva failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	// The refund note is advisory only; no payment integration exists.
	utils.SuccessJSON(ctx, "Reserva cancelada exitosamente. Se procesará tu reembolso en las próximas 24-48 horas.", nil)
}
