package reserva

import (
	"errors"

	"gorm.io/gorm"
)

// ReservaRepository defines the database operations for the reservation
// lifecycle.
type ReservaRepository interface {
	Create(r *Reserva) error
	GetByID(id uint) (*Reserva, error)
	ListByUsuario(usuarioID uint) ([]Reserva, error)
	ListByCanchas(canchaIDs []uint) ([]Reserva, error)
	Update(r *Reserva) error
	UpdateEstado(id uint, estado string) error
}

type reservaRepository struct {
	db *gorm.DB
}

// NewReservaRepository creates a new reserva repository.
func NewReservaRepository(db *gorm.DB) ReservaRepository {
	return &reservaRepository{db: db}
}

func (r *reservaRepository) Create(reserva *Reserva) error {
	return r.db.Create(reserva).Error
}

func (r *reservaRepository) GetByID(id uint) (*Reserva, error) {
	var reserva Reserva
	err := r.db.Preload("Cancha").Preload("Usuario").First(&reserva, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reserva, nil
}

func (r *reservaRepository) ListByUsuario(usuarioID uint) ([]Reserva, error) {
	var reservas []Reserva
	err := r.db.Preload("Cancha").Preload("Usuario").
		Where("usuario_id = ?", usuarioID).
		Order("fecha desc, hora_inicio desc").
		Find(&reservas).Error
	return reservas, err
}

// ListByCanchas returns the reservas for the given cancha ids. Called as
// the second phase of the owner listing, after the caller resolved which
// canchas it owns.
func (r *reservaRepository) ListByCanchas(canchaIDs []uint) ([]Reserva, error) {
	if len(canchaIDs) == 0 {
		return []Reserva{}, nil
	}
	var reservas []Reserva
	err := r.db.Preload("Cancha").Preload("Usuario").
		Where("cancha_id IN ?", canchaIDs).
		Order("fecha desc, hora_inicio desc").
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepository) Update(reserva *Reserva) error {
	return r.db.Model(reserva).Select(
		"cancha_id", "fecha", "hora_inicio", "duracion", "participantes", "metodo_pago",
	).Updates(reserva).Error
}

// UpdateEstado flips a reserva's status as a single-row atomic update.
func (r *reservaRepository) UpdateEstado(id uint, estado string) error {
	return r.db.Model(&Reserva{}).Where("id = ?", id).Update("estado", estado).Error
}
