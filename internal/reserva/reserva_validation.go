package reserva

import (
	"time"

	"github.com/dmartinezc/canchas-api/internal/booking"
)

// ParseFecha accepts the wire formats a reservation date may arrive in.
func ParseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func validDuracion(d float64) bool {
	for _, v := range Duraciones {
		if v == d {
			return true
		}
	}
	return false
}

func containsStr(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

// ValidarReserva checks the field constraints of a reserva before it is
// persisted, returning every violation. The only time bound applied here
// is the day boundary; operating hours govern cancha windows instead.
func ValidarReserva(fecha time.Time, horaInicio string, duracion float64, participantes, metodoPago string) []booking.FieldError {
	var errs []booking.FieldError

	if err := booking.ValidateFutureDate(fecha); err != nil {
		errs = append(errs, err.(booking.FieldError))
	}

	horaOK := booking.ValidHora(horaInicio)
	if !horaOK {
		errs = append(errs, booking.FieldError{Campo: "horaInicio", Mensaje: "Formato de hora inválido"})
	}
	if !validDuracion(duracion) {
		errs = append(errs, booking.FieldError{Campo: "duracion", Mensaje: "Duración no válida"})
	} else if horaOK {
		if err := booking.ValidateDayBound(horaInicio, duracion); err != nil {
			errs = append(errs, err.(booking.FieldError))
		}
	}

	if !containsStr(Participantes, participantes) {
		errs = append(errs, booking.FieldError{Campo: "participantes", Mensaje: "Número de participantes no válido"})
	}

	if !containsStr(MetodosPago, metodoPago) {
		errs = append(errs, booking.FieldError{Campo: "metodoPago", Mensaje: "Método de pago no válido"})
	}

	return errs
}
