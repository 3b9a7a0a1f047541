package cancha

// Options is the single source of truth for the allowed enumerations,
// exposed to clients for form population and consumed by the validators.
// It is an immutable value injected where needed, not scattered literals.
type Options struct {
	Tipos       []string `json:"tipos"`
	Ubicaciones []string `json:"ubicaciones"`
	Estados     []string `json:"estados"`
	Dias        []string `json:"dias"`
}

// DefaultOptions returns the allowed value sets for canchas.
func DefaultOptions() Options {
	return Options{
		Tipos:       []string{"Fútbol", "Básquetbol", "Tenis", "Voleibol"},
		Ubicaciones: []string{"Centro", "Norte", "Sur", "Este", "Oeste"},
		Estados:     []string{EstadoDisponible, EstadoNoDisponible, EstadoMantenimiento},
		Dias:        []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"},
	}
}

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}
