package cancha

import (
	"strings"

	"github.com/dmartinezc/canchas-api/internal/booking"
)

const (
	nombreMaxLen      = 100
	descripcionMaxLen = 500
	capacidadMin      = 2
	capacidadMax      = 100
	precioMin         = 1000
)

// ValidarCancha checks every field constraint of a new cancha and returns
// the full list of violations instead of stopping at the first.
func ValidarCancha(input *CanchaInput, opts Options) []booking.FieldError {
	var errs []booking.FieldError

	nombre := strings.TrimSpace(input.Nombre)
	if nombre == "" {
		errs = append(errs, booking.FieldError{Campo: "nombre", Mensaje: "El nombre es obligatorio"})
	} else if len([]rune(nombre)) > nombreMaxLen {
		errs = append(errs, booking.FieldError{Campo: "nombre", Mensaje: "El nombre no puede exceder 100 caracteres"})
	}

	if !contains(opts.Tipos, input.Tipo) {
		errs = append(errs, booking.FieldError{Campo: "tipo", Mensaje: "Tipo de cancha no válido"})
	}

	if input.Precio < precioMin {
		errs = append(errs, booking.FieldError{Campo: "precio", Mensaje: "El precio mínimo es 1000"})
	}

	if !contains(opts.Ubicaciones, input.Ubicacion) {
		errs = append(errs, booking.FieldError{Campo: "ubicacion", Mensaje: "Ubicación no válida"})
	}

	if input.Capacidad < capacidadMin {
		errs = append(errs, booking.FieldError{Campo: "capacidad", Mensaje: "La capacidad mínima es 2 personas"})
	} else if input.Capacidad > capacidadMax {
		errs = append(errs, booking.FieldError{Campo: "capacidad", Mensaje: "La capacidad máxima es 100 personas"})
	}

	if input.Estado != "" && !contains(opts.Estados, input.Estado) {
		errs = append(errs, booking.FieldError{Campo: "estado", Mensaje: "Estado no válido"})
	}

	if len([]rune(input.Descripcion)) > descripcionMaxLen {
		errs = append(errs, booking.FieldError{Campo: "descripcion", Mensaje: "La descripción no puede exceder 500 caracteres"})
	}

	errs = append(errs, ValidarHorarios(input.Horarios, opts)...)
	return errs
}

// ValidarHorarios enforces the availability-window invariants: every
// weekday distinct, every window well-formed and inside operating hours.
func ValidarHorarios(horarios []HorarioInput, opts Options) []booking.FieldError {
	var errs []booking.FieldError

	vistos := make(map[string]bool, len(horarios))
	for _, h := range horarios {
		if !contains(opts.Dias, h.Dia) {
			errs = append(errs, booking.FieldError{Campo: "horarios", Mensaje: "Día no válido: " + h.Dia})
			continue
		}
		if vistos[h.Dia] {
			errs = append(errs, booking.FieldError{Campo: "horarios", Mensaje: "No puede haber días duplicados en los horarios"})
		}
		vistos[h.Dia] = true

		errs = append(errs, booking.ValidateOperatingWindow(h.Desde, h.Hasta)...)
	}
	return errs
}
