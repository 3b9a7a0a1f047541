package reserva

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dmartinezc/canchas-api/internal/booking"
	"github.com/dmartinezc/canchas-api/internal/cancha"
	"github.com/dmartinezc/canchas-api/internal/user"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &cancha.Cancha{}, &cancha.Horario{}, &Reserva{}))
	return db
}

func fechaFutura() time.Time {
	return time.Now().AddDate(0, 0, 7)
}

func nuevaReserva(usuarioID, canchaID uint) *Reserva {
	return &Reserva{
		UsuarioID:     usuarioID,
		CanchaID:      canchaID,
		Fecha:         fechaFutura(),
		HoraInicio:    "10:00",
		Duracion:      2,
		Participantes: "11-20",
		Estado:        EstadoCompletada,
		MetodoPago:    MetodoNequi,
		Precio:        40000,
	}
}

func TestParseFecha(t *testing.T) {
	soloFecha, err := ParseFecha("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, 15, soloFecha.Day())

	conHora, err := ParseFecha("2026-09-15T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.September, conHora.Month())

	_, err = ParseFecha("15/09/2026")
	assert.Error(t, err)
}

func TestValidarReserva(t *testing.T) {
	tests := []struct {
		name          string
		fecha         time.Time
		horaInicio    string
		duracion      float64
		participantes string
		metodoPago    string
		mensaje       string
	}{
		{
			name:          "válida",
			fecha:         fechaFutura(),
			horaInicio:    "10:00",
			duracion:      1.5,
			participantes: "5",
			metodoPago:    MetodoEfectivo,
		},
		{
			name:          "termina exactamente a medianoche",
			fecha:         fechaFutura(),
			horaInicio:    "22:00",
			duracion:      2,
			participantes: "10",
			metodoPago:    MetodoNequi,
		},
		{
			name:          "fecha pasada",
			fecha:         time.Now().AddDate(0, 0, -1),
			horaInicio:    "10:00",
			duracion:      1,
			participantes: "1",
			metodoPago:    MetodoEfectivo,
			mensaje:       "No se pueden hacer reservas para fechas pasadas",
		},
		{
			name:          "hora mal formada",
			fecha:         fechaFutura(),
			horaInicio:    "25:00",
			duracion:      1,
			participantes: "1",
			metodoPago:    MetodoEfectivo,
			mensaje:       "Formato de hora inválido",
		},
		{
			name:          "duración fuera del catálogo",
			fecha:         fechaFutura(),
			horaInicio:    "10:00",
			duracion:      5,
			participantes: "1",
			metodoPago:    MetodoEfectivo,
			mensaje:       "Duración no válida",
		},
		{
			name:          "cruza la medianoche",
			fecha:         fechaFutura(),
			horaInicio:    "22:30",
			duracion:      2,
			participantes: "1",
			metodoPago:    MetodoEfectivo,
			mensaje:       "La reserva excede el horario diario",
		},
		{
			name:          "participantes fuera del catálogo",
			fecha:         fechaFutura(),
			horaInicio:    "10:00",
			duracion:      1,
			participantes: "50",
			metodoPago:    MetodoEfectivo,
			mensaje:       "Número de participantes no válido",
		},
		{
			name:          "método de pago desconocido",
			fecha:         fechaFutura(),
			horaInicio:    "10:00",
			duracion:      1,
			participantes: "1",
			metodoPago:    "tarjeta",
			mensaje:       "Método de pago no válido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidarReserva(tt.fecha, tt.horaInicio, tt.duracion, tt.participantes, tt.metodoPago)
			if tt.mensaje == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Contains(t, booking.Messages(errs), tt.mensaje)
		})
	}
}

func TestValidarReservaAcumulaErrores(t *testing.T) {
	errs := ValidarReserva(time.Now().AddDate(0, 0, -3), "mediodía", 7, "muchos", "cheque")
	require.Len(t, errs, 5)
}

func TestDuracionFormateada(t *testing.T) {
	tests := []struct {
		duracion float64
		want     string
	}{
		{1, "1 hora"},
		{1.5, "1.5 horas"},
		{2, "2 horas"},
		{2.5, "2.5 horas"},
		{4, "4 horas"},
	}
	for _, tt := range tests {
		r := Reserva{Duracion: tt.duracion}
		assert.Equal(t, tt.want, r.DuracionFormateada())
	}
}

func TestToResponseCamposDerivados(t *testing.T) {
	r := nuevaReserva(1, 2)
	r.Usuario = user.User{Nombre: "Ana", Email: "ana@example.com"}
	r.Cancha = cancha.Cancha{Nombre: "La Bombonera", Tipo: "Fútbol", Precio: 20000, Ubicacion: "Centro"}

	resp := ToResponse(r)
	assert.Equal(t, "12:00", resp.HoraFin)
	assert.Equal(t, "2 horas", resp.DuracionFormateada)
	assert.Equal(t, "Nequi", resp.MetodoPagoFormateado)
	assert.Equal(t, "Completada", resp.EstadoFormateado)
	assert.Equal(t, "$ 40.000", resp.PrecioFormateado)
	assert.Equal(t, "La Bombonera", resp.Cancha.Nombre)
}

func TestToResponseHoraFinMedianoche(t *testing.T) {
	r := nuevaReserva(1, 2)
	r.HoraInicio = "22:00"
	r.Duracion = 2
	assert.Equal(t, "24:00", ToResponse(r).HoraFin)
}

func TestLifecycleCancelacion(t *testing.T) {
	repo := NewReservaRepository(testDB(t))

	r := nuevaReserva(1, 2)
	require.NoError(t, repo.Create(r))
	assert.Equal(t, EstadoCompletada, r.Estado)

	require.NoError(t, repo.UpdateEstado(r.ID, EstadoCancelada))

	cancelada, err := repo.GetByID(r.ID)
	require.NoError(t, err)
	require.NotNil(t, cancelada)
	assert.Equal(t, EstadoCancelada, cancelada.Estado)
}

func TestUpdateNoTocaEstadoNiPrecio(t *testing.T) {
	repo := NewReservaRepository(testDB(t))

	r := nuevaReserva(1, 2)
	require.NoError(t, repo.Create(r))

	r.HoraInicio = "14:00"
	r.Duracion = 1
	r.Estado = EstadoCancelada // outside the update whitelist
	r.Precio = 1
	require.NoError(t, repo.Update(r))

	guardada, err := repo.GetByID(r.ID)
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.Equal(t, "14:00", guardada.HoraInicio)
	assert.Equal(t, float64(1), guardada.Duracion)
	assert.Equal(t, EstadoCompletada, guardada.Estado)
	assert.Equal(t, 40000, guardada.Precio)
}

func TestDobleReservaPermitida(t *testing.T) {
	// No overlap prevention exists: two reservas for the same cancha, date
	// and hour both persist.
	repo := NewReservaRepository(testDB(t))

	require.NoError(t, repo.Create(nuevaReserva(1, 2)))
	require.NoError(t, repo.Create(nuevaReserva(3, 2)))

	reservas, err := repo.ListByCanchas([]uint{2})
	require.NoError(t, err)
	assert.Len(t, reservas, 2)
}

func TestListByUsuarioOrden(t *testing.T) {
	repo := NewReservaRepository(testDB(t))

	temprana := nuevaReserva(1, 2)
	temprana.HoraInicio = "08:00"
	require.NoError(t, repo.Create(temprana))

	tardia := nuevaReserva(1, 2)
	tardia.HoraInicio = "20:00"
	require.NoError(t, repo.Create(tardia))

	ajena := nuevaReserva(9, 2)
	require.NoError(t, repo.Create(ajena))

	reservas, err := repo.ListByUsuario(1)
	require.NoError(t, err)
	require.Len(t, reservas, 2)
	assert.Equal(t, "20:00", reservas[0].HoraInicio)
}

func TestListByCanchasVacia(t *testing.T) {
	repo := NewReservaRepository(testDB(t))
	reservas, err := repo.ListByCanchas(nil)
	require.NoError(t, err)
	assert.Empty(t, reservas)
}
