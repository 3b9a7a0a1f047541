package policy

const (
	RoleAdmin   = "admin"
	RoleJugador = "jugador"

	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Subject is the authenticated caller as seen by the authorization rules.
// It is built by the auth middleware from the persisted user record.
type Subject struct {
	ID     uint
	Role   string
	Estado string
}

// IsActive reports whether the subject's account has not been deactivated.
// Inactive subjects are rejected at the authentication boundary, before any
// role or ownership gate runs.
func (s Subject) IsActive() bool {
	return s.Estado != EstadoInactivo
}

// IsAdmin reports whether the subject holds the admin role.
func (s Subject) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanManageCancha decides whether the subject may mutate a cancha. Courts
// are strictly owner-scoped: only the admin who created the cancha may
// edit or delete it.
func CanManageCancha(s Subject, creadorID uint) bool {
	return s.IsAdmin() && s.ID == creadorID
}

// CanActOnReserva decides whether the subject may update or cancel a
// reserva. Unlike canchas, any admin may act on any reserva; otherwise the
// subject must be the booking user.
func CanActOnReserva(s Subject, usuarioID uint) bool {
	return s.IsAdmin() || s.ID == usuarioID
}
