package user

import (
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/internal/policy"
)

// User is an account holder: a jugador who books canchas or an admin who
// owns them. Deactivation is a one-way estado flip; the row is retained so
// past reservas keep resolving.
type User struct {
	gorm.Model
	Nombre     string  `gorm:"not null" json:"nombre"`
	Email      string  `gorm:"unique;not null" json:"email"`
	Password   string  `gorm:"not null" json:"-"`
	Role       string  `gorm:"type:VARCHAR(20);default:'jugador'" json:"role"`
	Username   *string `gorm:"uniqueIndex" json:"username"`
	AvatarURL  string  `gorm:"default:''" json:"avatarUrl"`
	AvatarPath string  `gorm:"default:''" json:"-"`
	Estado     string  `gorm:"type:VARCHAR(20);default:'activo'" json:"estado"`
}

// Subject converts the persisted record into the view the authorization
// rules operate on.
func (u *User) Subject() policy.Subject {
	return policy.Subject{ID: u.ID, Role: u.Role, Estado: u.Estado}
}

type UpdatePerfilRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

type CambiarPasswordRequest struct {
	PasswordActual string `json:"passwordActual" binding:"required"`
	PasswordNueva  string `json:"passwordNueva" binding:"required,min=6"`
}

// PerfilResponse is the safe view of a user: everything except the
// password hash and internal storage paths.
type PerfilResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl"`
	Estado    string `json:"estado"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func ToPerfilResponse(u *User) PerfilResponse {
	username := ""
	if u.Username != nil {
		username = *u.Username
	}
	return PerfilResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Username:  username,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: u.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
