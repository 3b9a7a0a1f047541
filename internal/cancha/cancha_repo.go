package cancha

import (
	"errors"

	"gorm.io/gorm"
)

// CanchaRepository defines the database operations for the cancha registry.
// Lookups scoped by owner also require Activa=true, so a soft-deleted or
// foreign cancha is indistinguishable from an absent one.
type CanchaRepository interface {
	Create(c *Cancha) error
	GetByID(id uint) (*Cancha, error)
	GetOwned(id, creadorID uint) (*Cancha, error)
	ListOwned(creadorID uint) ([]Cancha, error)
	OwnedActiveIDs(creadorID uint) ([]uint, error)
	FindActiveByName(nombre string, excludeID uint) (*Cancha, error)
	Update(c *Cancha, horarios *[]Horario) error
	SoftDelete(id, creadorID uint) (*Cancha, error)
	ListPublicas(busqueda string) ([]Cancha, error)
	GetPublica(id uint) (*Cancha, error)
}

type canchaRepository struct {
	db *gorm.DB
}

// NewCanchaRepository creates a new cancha repository.
func NewCanchaRepository(db *gorm.DB) CanchaRepository {
	return &canchaRepository{db: db}
}

func (r *canchaRepository) Create(c *Cancha) error {
	return r.db.Create(c).Error
}

// GetByID resolves a cancha regardless of ownership or soft-delete state.
// Used by reserva history, where deactivated canchas must keep resolving.
func (r *canchaRepository) GetByID(id uint) (*Cancha, error) {
	var c Cancha
	err := r.db.Preload("Horarios").Preload("Creador").First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *canchaRepository) GetOwned(id, creadorID uint) (*Cancha, error) {
	var c Cancha
	err := r.db.Preload("Horarios").Preload("Creador").
		Where("id = ? AND creador_id = ? AND activa = ?", id, creadorID, true).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *canchaRepository) ListOwned(creadorID uint) ([]Cancha, error) {
	var canchas []Cancha
	err := r.db.Preload("Horarios").Preload("Creador").
		Where("creador_id = ? AND activa = ?", creadorID, true).
		Order("created_at desc").
		Find(&canchas).Error
	return canchas, err
}

func (r *canchaRepository) OwnedActiveIDs(creadorID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&Cancha{}).
		Where("creador_id = ? AND activa = ?", creadorID, true).
		Pluck("id", &ids).Error
	return ids, err
}

// FindActiveByName checks the name-uniqueness constraint, which applies
// among active canchas only and is global, not owner-scoped.
func (r *canchaRepository) FindActiveByName(nombre string, excludeID uint) (*Cancha, error) {
	var c Cancha
	query := r.db.Where("nombre = ? AND activa = ?", nombre, true)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Update persists the cancha's scalar fields and, when horarios is
// non-nil, replaces the full set of availability windows in the same
// transaction.
func (r *canchaRepository) Update(c *Cancha, horarios *[]Horario) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(c).Select(
			"nombre", "tipo", "precio", "ubicacion", "capacidad", "estado", "descripcion",
		).Updates(c).Error; err != nil {
			return err
		}

		if horarios != nil {
			if err := tx.Unscoped().Where("cancha_id = ?", c.ID).Delete(&Horario{}).Error; err != nil {
				return err
			}
			for i := range *horarios {
				(*horarios)[i].CanchaID = c.ID
			}
			if len(*horarios) > 0 {
				if err := tx.Create(horarios).Error; err != nil {
					return err
				}
			}
			c.Horarios = *horarios
		}
		return nil
	})
}

// SoftDelete flips the cancha out of circulation without removing the
// row. Existing reservas are untouched.
func (r *canchaRepository) SoftDelete(id, creadorID uint) (*Cancha, error) {
	var c Cancha
	err := r.db.Where("id = ? AND creador_id = ? AND activa = ?", id, creadorID, true).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.Model(&c).Updates(map[string]interface{}{
		"activa": false,
		"estado": EstadoNoDisponible,
	}).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *canchaRepository) ListPublicas(busqueda string) ([]Cancha, error) {
	var canchas []Cancha
	query := r.db.Preload("Horarios").Preload("Creador").
		Where("activa = ? AND estado = ?", true, EstadoDisponible)

	if busqueda != "" {
		patron := "%" + busqueda + "%"
		query = query.Where("LOWER(nombre) LIKE LOWER(?) OR LOWER(tipo) LIKE LOWER(?)", patron, patron)
	}

	err := query.Order("created_at desc").Find(&canchas).Error
	return canchas, err
}

func (r *canchaRepository) GetPublica(id uint) (*Cancha, error) {
	var c Cancha
	err := r.db.Preload("Horarios").Preload("Creador").
		Where("id = ? AND activa = ? AND estado = ?", id, true, EstadoDisponible).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
