// Package booking holds the pure time, date and price rules shared by the
// cancha and reserva flows. Nothing here touches the database.
package booking

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// Operating hours for cancha availability windows: 06:00 - 23:00.
// These bounds govern cancha schedule edits only; reservas are checked
// against the day boundary instead (see ValidateDayBound).
const (
	AperturaMinutos = 360  // 06:00
	CierreMinutos   = 1380 // 23:00

	VentanaMinimaMinutos = 30
	VentanaMaximaMinutos = 240

	MinutosPorDia = 1440
)

var horaRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// FieldError is a single violated constraint, tied to the field that
// caused it so callers can surface every problem in one response.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

func (e FieldError) Error() string {
	return e.Mensaje
}

// Messages flattens a violation list into its human-readable messages.
func Messages(errs []FieldError) []string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Mensaje)
	}
	return msgs
}

// ValidHora reports whether s is a well-formed "HH:MM" time of day.
func ValidHora(s string) bool {
	return horaRegex.MatchString(s)
}

// MinutesOfDay converts "HH:MM" to minutes since midnight.
func MinutesOfDay(hora string) (int, error) {
	if !ValidHora(hora) {
		return 0, fmt.Errorf("formato de hora inválido (HH:MM): %q", hora)
	}
	var h, m int
	fmt.Sscanf(hora, "%d:%d", &h, &m)
	return h*60 + m, nil
}

// ValidateOperatingWindow checks a cancha availability window against the
// facility operating hours. It returns every violated constraint.
func ValidateOperatingWindow(desde, hasta string) []FieldError {
	var errs []FieldError

	inicio, err := MinutesOfDay(desde)
	if err != nil {
		errs = append(errs, FieldError{Campo: "desde", Mensaje: "Formato de hora inválido (HH:MM)"})
	}
	fin, err := MinutesOfDay(hasta)
	if err != nil {
		errs = append(errs, FieldError{Campo: "hasta", Mensaje: "Formato de hora inválido (HH:MM)"})
	}
	if len(errs) > 0 {
		return errs
	}

	if inicio < AperturaMinutos || fin > CierreMinutos {
		errs = append(errs, FieldError{Campo: "horarios", Mensaje: "Horario de funcionamiento: 06:00 - 23:00"})
	}
	if fin <= inicio {
		errs = append(errs, FieldError{Campo: "horarios", Mensaje: "La hora de fin debe ser mayor que la hora de inicio"})
		return errs
	}
	if fin-inicio < VentanaMinimaMinutos {
		errs = append(errs, FieldError{Campo: "horarios", Mensaje: "La ventana debe tener una duración mínima de 30 minutos"})
	}
	if fin-inicio > VentanaMaximaMinutos {
		errs = append(errs, FieldError{Campo: "horarios", Mensaje: "La ventana no puede exceder 4 horas de duración"})
	}
	return errs
}

// ValidateDayBound rejects a reserva whose end would cross midnight.
// This is the only time bound applied to reservas; the 06:00-23:00
// operating hours apply to cancha windows, not here.
func ValidateDayBound(horaInicio string, duracion float64) error {
	inicio, err := MinutesOfDay(horaInicio)
	if err != nil {
		return FieldError{Campo: "horaInicio", Mensaje: "Formato de hora inválido (HH:MM)"}
	}
	if inicio+int(duracion*60) > MinutosPorDia {
		return FieldError{Campo: "horaInicio", Mensaje: "La reserva excede el horario diario"}
	}
	return nil
}

// ValidateFutureDate rejects dates strictly before the current calendar
// day. Time of day is ignored on both sides.
func ValidateFutureDate(fecha time.Time) error {
	hoy := time.Now()
	hoy = time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, hoy.Location())
	if dia.Before(hoy) {
		return FieldError{Campo: "fecha", Mensaje: "No se pueden hacer reservas para fechas pasadas"}
	}
	return nil
}

// ComputePrice derives a reserva's price. An explicit price wins;
// otherwise it is the cancha's hourly price times the duration, rounded
// to the peso.
func ComputePrice(precioPorHora int, duracion float64, explicito int) int {
	if explicito > 0 {
		return explicito
	}
	return int(math.Round(float64(precioPorHora) * duracion))
}

// EndTime computes the "HH:MM" end of a reserva. A reserva never crosses
// midnight (ValidateDayBound), so no wrap handling is needed.
func EndTime(horaInicio string, duracion float64) string {
	inicio, err := MinutesOfDay(horaInicio)
	if err != nil {
		return ""
	}
	fin := inicio + int(duracion*60)
	return fmt.Sprintf("%02d:%02d", fin/60, fin%60)
}
