package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartinezc/canchas-api/internal/booking"
)

func validRegister() *RegisterRequest {
	return &RegisterRequest{
		Nombre:   "Ana García",
		Email:    "ana@example.com",
		Password: "secreto123",
	}
}

func TestValidarRegistro(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		mensaje string
	}{
		{
			name:   "válido",
			mutate: func(r *RegisterRequest) {},
		},
		{
			name:   "rol admin permitido",
			mutate: func(r *RegisterRequest) { r.Role = "admin" },
		},
		{
			name:    "nombre vacío",
			mutate:  func(r *RegisterRequest) { r.Nombre = "  " },
			mensaje: "El nombre es obligatorio",
		},
		{
			name:    "email sin dominio",
			mutate:  func(r *RegisterRequest) { r.Email = "ana@" },
			mensaje: "El email no es válido",
		},
		{
			name:    "contraseña corta",
			mutate:  func(r *RegisterRequest) { r.Password = "abc" },
			mensaje: "La contraseña debe tener al menos 6 caracteres",
		},
		{
			name:    "rol desconocido",
			mutate:  func(r *RegisterRequest) { r.Role = "superadmin" },
			mensaje: "El rol no es válido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(req)
			errs := ValidarRegistro(req)
			if tt.mensaje == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Contains(t, booking.Messages(errs), tt.mensaje)
		})
	}
}

func TestValidarRegistroAcumulaErrores(t *testing.T) {
	req := &RegisterRequest{Role: "dios"}
	require.Len(t, ValidarRegistro(req), 4)
}
