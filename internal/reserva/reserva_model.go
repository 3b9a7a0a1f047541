package reserva

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/internal/booking"
	"github.com/dmartinezc/canchas-api/internal/cancha"
	"github.com/dmartinezc/canchas-api/internal/user"
	"github.com/dmartinezc/canchas-api/pkg/utils"
)

const (
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"

	MetodoEfectivo = "efectivo"
	MetodoNequi    = "nequi"
)

// Duraciones is the set of bookable durations, in hours.
var Duraciones = []float64{1, 1.5, 2, 2.5, 3, 4}

// Participantes are the allowed party-size buckets.
var Participantes = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11-20", "21-30", "30+"}

// MetodosPago are the accepted payment methods.
var MetodosPago = []string{MetodoEfectivo, MetodoNequi}

// Reserva is a confirmed booking of a cancha. It is created directly in
// estado completada; the only transition is the one-way cancellation.
type Reserva struct {
	gorm.Model
	UsuarioID     uint          `gorm:"index" json:"usuarioId"`
	Usuario       user.User     `json:"-"`
	CanchaID      uint          `gorm:"index" json:"canchaId"`
	Cancha        cancha.Cancha `json:"-"`
	Fecha         time.Time     `gorm:"not null" json:"fecha"`
	HoraInicio    string        `gorm:"not null" json:"horaInicio"`
	Duracion      float64       `gorm:"not null" json:"duracion"`
	Participantes string        `gorm:"not null" json:"participantes"`
	Estado        string        `gorm:"type:VARCHAR(20);default:'completada'" json:"estado"`
	MetodoPago    string        `gorm:"not null" json:"metodoPago"`
	Precio        int           `gorm:"not null" json:"precio"`
}

type ReservaInput struct {
	Cancha        uint    `json:"cancha" binding:"required"`
	Fecha         string  `json:"fecha" binding:"required"`
	HoraInicio    string  `json:"horaInicio" binding:"required"`
	Duracion      float64 `json:"duracion" binding:"required"`
	Participantes string  `json:"participantes" binding:"required"`
	MetodoPago    string  `json:"metodoPago" binding:"required"`
}

// ReservaUpdateInput carries the whitelist of mutable fields. Nil means
// "leave unchanged".
type ReservaUpdateInput struct {
	Cancha        *uint    `json:"cancha,omitempty"`
	Fecha         *string  `json:"fecha,omitempty"`
	HoraInicio    *string  `json:"horaInicio,omitempty"`
	Duracion      *float64 `json:"duracion,omitempty"`
	Participantes *string  `json:"participantes,omitempty"`
	MetodoPago    *string  `json:"metodoPago,omitempty"`
}

// CanchaResumen is the cancha summary embedded in a reserva response.
type CanchaResumen struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Tipo      string `json:"tipo"`
	Precio    int    `json:"precio"`
	Ubicacion string `json:"ubicacion"`
}

// UsuarioResumen is the user summary embedded in a reserva response.
type UsuarioResumen struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// ReservaResponse is the read view of a reserva: persisted fields plus
// the computed display fields, derived at read time and never stored.
type ReservaResponse struct {
	ID                   uint           `json:"id"`
	Usuario              UsuarioResumen `json:"usuario"`
	Cancha               CanchaResumen  `json:"cancha"`
	Fecha                string         `json:"fecha"`
	HoraInicio           string         `json:"horaInicio"`
	HoraFin              string         `json:"horaFin"`
	Duracion             float64        `json:"duracion"`
	DuracionFormateada   string         `json:"duracionFormateada"`
	Participantes        string         `json:"participantes"`
	Estado               string         `json:"estado"`
	EstadoFormateado     string         `json:"estadoFormateado"`
	MetodoPago           string         `json:"metodoPago"`
	MetodoPagoFormateado string         `json:"metodoPagoFormateado"`
	Precio               int            `json:"precio"`
	PrecioFormateado     string         `json:"precioFormateado"`
	CreatedAt            string         `json:"createdAt"`
	UpdatedAt            string         `json:"updatedAt"`
}

// DuracionFormateada renders the duration as a human label ("1 hora",
// "2.5 horas").
func (r *Reserva) DuracionFormateada() string {
	if r.Duracion == 1 {
		return "1 hora"
	}
	if r.Duracion == float64(int(r.Duracion)) {
		return fmt.Sprintf("%d horas", int(r.Duracion))
	}
	return fmt.Sprintf("%g horas", r.Duracion)
}

// MetodoPagoFormateado renders the payment method as a display label.
func (r *Reserva) MetodoPagoFormateado() string {
	switch r.MetodoPago {
	case MetodoEfectivo:
		return "Efectivo"
	case MetodoNequi:
		return "Nequi"
	}
	return r.MetodoPago
}

// EstadoFormateado renders the status as a display label.
func (r *Reserva) EstadoFormateado() string {
	switch r.Estado {
	case EstadoCompletada:
		return "Completada"
	case EstadoCancelada:
		return "Cancelada"
	}
	return r.Estado
}

func ToResponse(r *Reserva) ReservaResponse {
	return ReservaResponse{
		ID: r.ID,
		Usuario: UsuarioResumen{
			ID:     r.UsuarioID,
			Nombre: r.Usuario.Nombre,
			Email:  r.Usuario.Email,
		},
		Cancha: CanchaResumen{
			ID:        r.CanchaID,
			Nombre:    r.Cancha.Nombre,
			Tipo:      r.Cancha.Tipo,
			Precio:    r.Cancha.Precio,
			Ubicacion: r.Cancha.Ubicacion,
		},
		Fecha:                r.Fecha.Format("2006-01-02"),
		HoraInicio:           r.HoraInicio,
		HoraFin:              booking.EndTime(r.HoraInicio, r.Duracion),
		Duracion:             r.Duracion,
		DuracionFormateada:   r.DuracionFormateada(),
		Participantes:        r.Participantes,
		Estado:               r.Estado,
		EstadoFormateado:     r.EstadoFormateado(),
		MetodoPago:           r.MetodoPago,
		MetodoPagoFormateado: r.MetodoPagoFormateado(),
		Precio:               r.Precio,
		PrecioFormateado:     utils.FormatCOP(r.Precio),
		CreatedAt:            r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:            r.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponseList(reservas []Reserva) []ReservaResponse {
	out := make([]ReservaResponse, 0, len(reservas))
	for i := range reservas {
		out = append(out, ToResponse(&reservas[i]))
	}
	return out
}
