package auth

import (
	"regexp"
	"strings"

	"github.com/dmartinezc/canchas-api/internal/booking"
	"github.com/dmartinezc/canchas-api/internal/policy"
	"github.com/dmartinezc/canchas-api/internal/user"
)

const passwordMinLen = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterRequest struct {
	Nombre   string  `json:"nombre" example:"Ana García"`
	Email    string  `json:"email" example:"ana@example.com"`
	Password string  `json:"password" example:"secreto123"`
	Username *string `json:"username,omitempty" example:"anagarcia"`
	Role     string  `json:"role,omitempty" example:"jugador"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"secreto123"`
}

type AuthResponse struct {
	Token   string              `json:"token"`
	Usuario user.PerfilResponse `json:"usuario"`
}

// ValidarRegistro collects every invalid registration field.
func ValidarRegistro(req *RegisterRequest) []booking.FieldError {
	var errs []booking.FieldError

	if strings.TrimSpace(req.Nombre) == "" {
		errs = append(errs, booking.FieldError{Campo: "nombre", Mensaje: "El nombre es obligatorio"})
	}
	if !emailRegex.MatchString(req.Email) {
		errs = append(errs, booking.FieldError{Campo: "email", Mensaje: "El email no es válido"})
	}
	if len(req.Password) < passwordMinLen {
		errs = append(errs, booking.FieldError{Campo: "password", Mensaje: "La contraseña debe tener al menos 6 caracteres"})
	}
	if req.Role != "" && req.Role != policy.RoleAdmin && req.Role != policy.RoleJugador {
		errs = append(errs, booking.FieldError{Campo: "role", Mensaje: "El rol no es válido"})
	}

	return errs
}
