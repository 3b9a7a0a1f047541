package cancha

import (
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/internal/user"
	"github.com/dmartinezc/canchas-api/pkg/utils"
)

const (
	EstadoDisponible    = "disponible"
	EstadoNoDisponible  = "no disponible"
	EstadoMantenimiento = "mantenimiento"
)

// Cancha is a bookable sports facility. It is owned by the admin who
// created it and is never hard-deleted: Activa=false takes it out of every
// listing while past reservas keep resolving against it.
type Cancha struct {
	gorm.Model
	Nombre      string    `gorm:"not null" json:"nombre"`
	Tipo        string    `gorm:"not null" json:"tipo"`
	Precio      int       `gorm:"not null" json:"precio"`
	Estado      string    `gorm:"type:VARCHAR(20);default:'disponible'" json:"estado"`
	Descripcion string    `gorm:"default:''" json:"descripcion"`
	Ubicacion   string    `gorm:"not null" json:"ubicacion"`
	Capacidad   int       `gorm:"not null" json:"capacidad"`
	CreadorID   uint      `gorm:"index" json:"creadorId"`
	Creador     user.User `json:"-"`
	Horarios    []Horario `json:"horarios"`
	Activa      bool      `gorm:"default:true;index" json:"activa"`
}

// Horario is a weekly availability window: a weekday with opening and
// closing times. No two windows of the same cancha share a weekday.
type Horario struct {
	gorm.Model
	CanchaID uint   `json:"-"`
	Dia      string `gorm:"not null" json:"dia"`
	Desde    string `gorm:"not null" json:"desde"`
	Hasta    string `gorm:"not null" json:"hasta"`
}

type HorarioInput struct {
	Dia   string `json:"dia" binding:"required"`
	Desde string `json:"desde" binding:"required"`
	Hasta string `json:"hasta" binding:"required"`
}

type CanchaInput struct {
	Nombre      string         `json:"nombre" binding:"required"`
	Tipo        string         `json:"tipo" binding:"required"`
	Precio      int            `json:"precio" binding:"required"`
	Ubicacion   string         `json:"ubicacion" binding:"required"`
	Capacidad   int            `json:"capacidad" binding:"required"`
	Estado      string         `json:"estado"`
	Descripcion string         `json:"descripcion"`
	Horarios    []HorarioInput `json:"horarios"`
}

// CanchaUpdateInput carries the whitelist of mutable fields. Nil means
// "leave unchanged".
type CanchaUpdateInput struct {
	Nombre      *string         `json:"nombre,omitempty"`
	Tipo        *string         `json:"tipo,omitempty"`
	Precio      *int            `json:"precio,omitempty"`
	Ubicacion   *string         `json:"ubicacion,omitempty"`
	Capacidad   *int            `json:"capacidad,omitempty"`
	Estado      *string         `json:"estado,omitempty"`
	Descripcion *string         `json:"descripcion,omitempty"`
	Horarios    *[]HorarioInput `json:"horarios,omitempty"`
}

// CreadorResumen is the public summary of a cancha's owner.
type CreadorResumen struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}

// CanchaResponse is the read view of a cancha: the persisted fields plus
// the computed display fields, which are derived at read time and never
// stored.
type CanchaResponse struct {
	ID               uint           `json:"id"`
	Nombre           string         `json:"nombre"`
	Tipo             string         `json:"tipo"`
	Precio           int            `json:"precio"`
	Estado           string         `json:"estado"`
	Descripcion      string         `json:"descripcion"`
	Ubicacion        string         `json:"ubicacion"`
	Capacidad        int            `json:"capacidad"`
	Creador          CreadorResumen `json:"creador"`
	Horarios         []Horario      `json:"horarios"`
	Activa           bool           `json:"activa"`
	Disponible       bool           `json:"disponible"`
	PrecioFormateado string         `json:"precioFormateado"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"`
}

// Disponible reports whether the cancha can accept new reservas.
func (c *Cancha) Disponible() bool {
	return c.Estado == EstadoDisponible && c.Activa
}

func ToResponse(c *Cancha) CanchaResponse {
	horarios := c.Horarios
	if horarios == nil {
		horarios = []Horario{}
	}
	return CanchaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Tipo:        c.Tipo,
		Precio:      c.Precio,
		Estado:      c.Estado,
		Descripcion: c.Descripcion,
		Ubicacion:   c.Ubicacion,
		Capacidad:   c.Capacidad,
		Creador: CreadorResumen{
			ID:     c.CreadorID,
			Nombre: c.Creador.Nombre,
			Email:  c.Creador.Email,
		},
		Horarios:         horarios,
		Activa:           c.Activa,
		Disponible:       c.Disponible(),
		PrecioFormateado: utils.FormatCOP(c.Precio),
		CreatedAt:        c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        c.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponseList(canchas []Cancha) []CanchaResponse {
	out := make([]CanchaResponse, 0, len(canchas))
	for i := range canchas {
		out = append(out, ToResponse(&canchas[i]))
	}
	return out
}
