package cancha

import (
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmartinezc/canchas-api/internal/booking"
	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/internal/policy"
	"github.com/dmartinezc/canchas-api/pkg/utils"
)

// CanchaController handles cancha-related HTTP requests.
type CanchaController struct {
	repo CanchaRepository
	opts Options
}

// NewCanchaController creates a new cancha controller.
func NewCanchaController(repo CanchaRepository, opts Options) *CanchaController {
	return &CanchaController{
		repo: repo,
		opts: opts,
	}
}

// CrearCancha godoc
// @Summary Create a new cancha
// @Description Create a new cancha owned by the authenticated admin
// @Tags canchas
// @Accept json
// @Produce json
// @Param cancha body CanchaInput true "Cancha information"
// @Success 201 {object} utils.APIResponse{data=CanchaResponse} "Cancha created"
// @Failure 400 {object} utils.APIResponse "Validation errors"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Admin role required"
// @Failure 409 {object} utils.APIResponse "Name already in use"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /canchas [post]
// @Security Bearer
func (c *CanchaController) CrearCancha(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	var input CanchaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}

	input.Nombre = strings.TrimSpace(input.Nombre)
	input.Descripcion = strings.TrimSpace(input.Descripcion)

	if errs := ValidarCancha(&input, c.opts); len(errs) > 0 {
		utils.ValidationErrorJSON(ctx, booking.Messages(errs))
		return
	}

	existente, err := c.repo.FindActiveByName(input.Nombre, 0)
	if err != nil {
		log.Printf("cancha name lookup failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	if existente != nil {
		utils.ConflictJSON(ctx, "Ya existe una cancha con ese nombre")
		return
	}

	estado := input.Estado
	if estado == "" {
		estado = EstadoDisponible
	}

	horarios := make([]Horario, 0, len(input.Horarios))
	for _, h := range input.Horarios {
		horarios = append(horarios, Horario{Dia: h.Dia, Desde: h.Desde, Hasta: h.Hasta})
	}

	nueva := &Cancha{
		Nombre:      input.Nombre,
		Tipo:        input.Tipo,
		Precio:      input.Precio,
		Estado:      estado,
		Descripcion: input.Descripcion,
		Ubicacion:   input.Ubicacion,
		Capacidad:   input.Capacidad,
		CreadorID:   actor.ID,
		Horarios:    horarios,
		Activa:      true,
	}

	if err := c.repo.Create(nueva); err != nil {
		log.Printf("create cancha failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	nueva.Creador = *actor

	utils.CreatedJSON(ctx, "Cancha creada correctamente", ToResponse(nueva))
}

// MisCanchas godoc
// @Summary List own canchas
// @Description List the active canchas created by the authenticated admin, newest first
// @Tags canchas
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]CanchaResponse} "List of canchas"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Admin role required"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /canchas/mis-canchas [get]
// @Security Bearer
func (c *CanchaController) MisCanchas(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	canchas, err := c.repo.ListOwned(actor.ID)
	if err != nil {
		log.Printf("list own canchas failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	utils.SuccessJSON(ctx, strconv.Itoa(len(canchas))+" cancha(s) encontrada(s)", ToResponseList(canchas))
}

// CanchaPorID godoc
// @Summary Get own cancha by ID
// @Description Get one of the authenticated admin's active canchas. Foreign or soft-deleted canchas are reported as not found.
// @Tags canchas
// @Produce json
// @Param id path int true "Cancha ID"
// @Success 200 {object} utils.APIResponse{data=CanchaResponse} "Cancha details"
// @Failure 400 {object} utils.APIResponse "Invalid cancha ID"
// @Failure 404 {object} utils.APIResponse "Cancha not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /canchas/{id} [get]
// @Security Bearer
func (c *CanchaController) CanchaPorID(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "ID de cancha inválido")
		return
	}

	encontrada, err := c.repo.GetOwned(uint(id), actor.ID)
	if err != nil {
		log.Printf("get cancha failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	if encontrada == nil {
		utils.NotFoundJSON(ctx, "Cancha no encontrada")
		return
	}

	utils.SuccessJSON(ctx, "Cancha obtenida correctamente", ToResponse(encontrada))
}

// EditarCancha godoc
// @Summary Update cancha
// @Description Update the mutable fields of one of the authenticated admin's canchas
// @Tags canchas
// @Accept json
// @Produce json
// @Param id path int true "Cancha ID"
// @Param cancha body CanchaUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=CanchaResponse} "Cancha updated"
// @Failure 400 {object} utils.APIResponse "Validation errors"
// @Failure 404 {object} utils.APIResponse "Cancha not found"
// @Failure 409 {object} utils.APIResponse "Name already in use"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /canchas/{id} [put]
// @Security Bearer
func (c *CanchaController) EditarCancha(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "ID de cancha inválido")
		return
	}

	var input CanchaUpdateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.BadRequestJSON(ctx, err.Error())
		return
	}

	existente, err := c.repo.GetOwned(uint(id), actor.ID)
	if err != nil {
		log.Printf("get cancha failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	// Ownership failures surface as not-found so callers cannot probe
	// for other admins' canchas.
	if existente == nil || !policy.CanManageCancha(actor.Subject(), existente.CreadorID) {
		utils.NotFoundJSON(ctx, "Cancha no encontrada")
		return
	}

	merged := *existente
	if input.Nombre != nil {
		merged.Nombre = strings.TrimSpace(*input.Nombre)
	}
	if input.Tipo != nil {
		merged.Tipo = *input.Tipo
	}
	if input.Precio != nil {
		merged.Precio = *input.Precio
	}
	if input.Ubicacion != nil {
		merged.Ubicacion = *input.Ubicacion
	}
	if input.Capacidad != nil {
		merged.Capacidad = *input.Capacidad
	}
	if input.Estado != nil {
		merged.Estado = *input.Estado
	}
	if input.Descripcion != nil {
		merged.Descripcion = strings.TrimSpace(*input.Descripcion)
	}

	mergedInput := CanchaInput{
		Nombre:      merged.Nombre,
		Tipo:        merged.Tipo,
		Precio:      merged.Precio,
		Ubicacion:   merged.Ubicacion,
		Capacidad:   merged.Capacidad,
		Estado:      merged.Estado,
		Descripcion: merged.Descripcion,
	}
	if input.Horarios != nil {
		mergedInput.Horarios = *input.Horarios
	}

	if errs := ValidarCancha(&mergedInput, c.opts); len(errs) > 0 {
		utils.ValidationErrorJSON(ctx, booking.Messages(errs))
		return
	}

	if input.Nombre != nil {
		colision, err := c.repo.FindActiveByName(merged.Nombre, merged.ID)
		if err != nil {
			log.Printf("cancha name lookup failed: %v", err)
			utils.ServerErrorJSON(ctx)
			return
		}
		if colision != nil {
			utils.ConflictJSON(ctx, "Ya existe una cancha con ese nombre")
			return
		}
	}

	var horarios *[]Horario
	if input.Horarios != nil {
		replaced := make([]Horario, 0, len(*input.Horarios))
		for _, h := range *input.Horarios {
			replaced = append(replaced, Horario{Dia: h.Dia, Desde: h.Desde, Hasta: h.Hasta})
		}
		horarios = &replaced
	}

	if err := c.repo.Update(&merged, horarios); err != nil {
		log.Printf("update cancha failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	utils.SuccessJSON(ctx, "Cancha actualizada correctamente", ToResponse(&merged))
}

// EliminarCancha godoc
// @Summary Soft-delete cancha
// @Description Deactivate one of the authenticated admin's canchas. Existing reservas are kept for history.
// @Tags canchas
// @Produce json
// @Param id path int true "Cancha ID"
// @Success 200 {object} utils.APIResponse "Cancha deactivated"
// @Failure 400 {object} utils.APIResponse "Invalid cancha ID"
// @Failure 404 {object} utils.APIResponse "Cancha not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /canchas/{id} [delete]
// @Security Bearer
func (c *CanchaController) EliminarCancha(ctx *gin.Context) {
	actor, err := middleware.GetCurrentUser(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx, "")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "ID de cancha inválido")
		return
	}

	eliminada, err := c.repo.SoftDelete(uint(id), actor.ID)
	if err != nil {
		log.Printf("soft delete cancha failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	if eliminada == nil {
		utils.NotFoundJSON(ctx, "Cancha no encontrada")
		return
	}

	utils.SuccessJSON(ctx, "Cancha eliminada correctamente", nil)
}

// CanchasPublicas godoc
// @Summary List public canchas
// @Description List every active and available cancha, optionally filtered by a case-insensitive search on name or type. No authentication required.
// @Tags canchas
// @Produce json
// @Param busqueda query string false "Substring match against nombre or tipo"
// @Success 200 {object} utils.APIResponse{data=[]CanchaResponse} "List of canchas"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /canchas/publicas [get]
func (c *CanchaController) CanchasPublicas(ctx *gin.Context) {
	canchas, err := c.repo.ListPublicas(ctx.Query("busqueda"))
	if err != nil {
		log.Printf("list public canchas failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}

	utils.SuccessJSON(ctx, strconv.Itoa(len(canchas))+" cancha(s) encontrada(s)", ToResponseList(canchas))
}

// CanchaPublica godoc
// @Summary Get public cancha by ID
// @Description Get an active, available cancha. No authentication required.
// @Tags canchas
// @Produce json
// @Param id path int true "Cancha ID"
// @Success 200 {object} utils.APIResponse{data=CanchaResponse} "Cancha details"
// @Failure 400 {object} utils.APIResponse "Invalid cancha ID"
// @Failure 404 {object} utils.APIResponse "Cancha not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /canchas/publica/{id} [get]
func (c *CanchaController) CanchaPublica(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "ID de cancha inválido")
		return
	}

	encontrada, err := c.repo.GetPublica(uint(id))
	if err != nil {
		log.Printf("get public cancha failed: %v", err)
		utils.ServerErrorJSON(ctx)
		return
	}
	if encontrada == nil {
		utils.NotFoundJSON(ctx, "Cancha no encontrada")
		return
	}

	utils.SuccessJSON(ctx, "Cancha obtenida correctamente", ToResponse(encontrada))
}

// Opciones godoc
// @Summary Allowed cancha enumerations
// @Description Static allowed-value sets (types, locations, statuses, weekdays) for client-side form population
// @Tags canchas
// @Produce json
// @Success 200 {object} utils.APIResponse{data=Options} "Allowed values"
// @Router /canchas/opciones [get]
func (c *CanchaController) Opciones(ctx *gin.Context) {
	utils.SuccessJSON(ctx, "Opciones obtenidas", c.opts)
}
