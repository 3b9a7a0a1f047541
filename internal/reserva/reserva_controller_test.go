package reserva

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/internal/cancha"
	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/internal/user"
)

func setupRouter(db *gorm.DB, actor *user.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, actor)
	})

	controller := NewReservaController(NewReservaRepository(db), cancha.NewCanchaRepository(db))
	r.POST("/reservas", controller.CrearReserva)
	r.GET("/reservas/mis-reservas", controller.MisReservas)
	r.GET("/reservas/mis-canchas", controller.ReservasDeMisCanchas)
	r.PUT("/reservas/:id", controller.ActualizarReserva)
	r.PATCH("/reservas/:id/cancelar", controller.CancelarReserva)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedCancha(t *testing.T, db *gorm.DB, estado string, activa bool) *cancha.Cancha {
	t.Helper()
	c := &cancha.Cancha{
		Nombre:    fmt.Sprintf("Cancha %s %v %d", estado, activa, time.Now().UnixNano()),
		Tipo:      "Fútbol",
		Precio:    20000,
		Estado:    estado,
		Ubicacion: "Centro",
		Capacidad: 22,
		CreadorID: 100,
		Activa:    activa,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedUser(t *testing.T, db *gorm.DB, nombre, role string) *user.User {
	t.Helper()
	u := &user.User{
		Nombre:   nombre,
		Email:    fmt.Sprintf("%s-%d@example.com", role, time.Now().UnixNano()),
		Password: "x",
		Role:     role,
		Estado:   "activo",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func reservaBody(canchaID uint) map[string]any {
	return map[string]any{
		"cancha":        canchaID,
		"fecha":         time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"horaInicio":    "10:00",
		"duracion":      2,
		"participantes": "11-20",
		"metodoPago":    "nequi",
	}
}

func TestCrearReserva(t *testing.T) {
	db := testDB(t)
	jugador := seedUser(t, db, "Ana", "jugador")
	r := setupRouter(db, jugador)

	disponible := seedCancha(t, db, cancha.EstadoDisponible, true)

	w := doJSON(r, http.MethodPost, "/reservas", reservaBody(disponible.ID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := envelope(t, w)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]any)
	assert.Equal(t, "completada", data["estado"])
	assert.Equal(t, float64(40000), data["precio"])
	assert.Equal(t, "12:00", data["horaFin"])
	assert.Equal(t, "$ 40.000", data["precioFormateado"])
}

func TestCrearReservaCanchaNoDisponible(t *testing.T) {
	db := testDB(t)
	jugador := seedUser(t, db, "Ana", "jugador")
	r := setupRouter(db, jugador)

	tests := []struct {
		name   string
		cancha *cancha.Cancha
	}{
		{"en mantenimiento", seedCancha(t, db, cancha.EstadoMantenimiento, true)},
		{"soft-deleted", seedCancha(t, db, cancha.EstadoNoDisponible, false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/reservas", reservaBody(tt.cancha.ID))
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "La cancha no está disponible", envelope(t, w)["message"])
		})
	}
}

func TestCrearReservaInvalida(t *testing.T) {
	db := testDB(t)
	jugador := seedUser(t, db, "Ana", "jugador")
	r := setupRouter(db, jugador)
	disponible := seedCancha(t, db, cancha.EstadoDisponible, true)

	body := reservaBody(disponible.ID)
	body["horaInicio"] = "22:30"
	body["metodoPago"] = "tarjeta"

	w := doJSON(r, http.MethodPost, "/reservas", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := envelope(t, w)
	errs := resp["errors"].([]any)
	assert.Len(t, errs, 2)
	// The first violation doubles as the response message.
	assert.Equal(t, errs[0], resp["message"])
}

func TestCancelarReserva(t *testing.T) {
	db := testDB(t)
	dueno := seedUser(t, db, "Ana", "jugador")
	otro := seedUser(t, db, "Luis", "jugador")
	admin := seedUser(t, db, "Root", "admin")

	repo := NewReservaRepository(db)
	reserva := nuevaReserva(dueno.ID, seedCancha(t, db, cancha.EstadoDisponible, true).ID)
	require.NoError(t, repo.Create(reserva))

	t.Run("no encontrada", func(t *testing.T) {
		w := doJSON(setupRouter(db, dueno), http.MethodPatch, "/reservas/9999/cancelar", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ajena sin rol admin", func(t *testing.T) {
		w := doJSON(setupRouter(db, otro), http.MethodPatch, fmt.Sprintf("/reservas/%d/cancelar", reserva.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin cancela la de otro", func(t *testing.T) {
		w := doJSON(setupRouter(db, admin), http.MethodPatch, fmt.Sprintf("/reservas/%d/cancelar", reserva.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		guardada, err := repo.GetByID(reserva.ID)
		require.NoError(t, err)
		assert.Equal(t, EstadoCancelada, guardada.Estado)
	})

	t.Run("ya cancelada", func(t *testing.T) {
		w := doJSON(setupRouter(db, dueno), http.MethodPatch, fmt.Sprintf("/reservas/%d/cancelar", reserva.ID), nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "La reserva ya está cancelada", envelope(t, w)["message"])
	})
}

func TestActualizarReservaCancelada(t *testing.T) {
	db := testDB(t)
	dueno := seedUser(t, db, "Ana", "jugador")
	r := setupRouter(db, dueno)

	repo := NewReservaRepository(db)
	reserva := nuevaReserva(dueno.ID, seedCancha(t, db, cancha.EstadoDisponible, true).ID)
	reserva.Estado = EstadoCancelada
	require.NoError(t, repo.Create(reserva))

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/reservas/%d", reserva.ID), map[string]any{"horaInicio": "14:00"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No se puede actualizar una reserva cancelada", envelope(t, w)["message"])
}

func TestActualizarReservaNoRecalculaPrecio(t *testing.T) {
	db := testDB(t)
	dueno := seedUser(t, db, "Ana", "jugador")
	r := setupRouter(db, dueno)

	repo := NewReservaRepository(db)
	reserva := nuevaReserva(dueno.ID, seedCancha(t, db, cancha.EstadoDisponible, true).ID)
	require.NoError(t, repo.Create(reserva))

	// Shortening the reserva leaves the agreed price untouched.
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/reservas/%d", reserva.ID), map[string]any{"duracion": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	guardada, err := repo.GetByID(reserva.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(1), guardada.Duracion)
	assert.Equal(t, 40000, guardada.Precio)
}

func TestReservasDeMisCanchas(t *testing.T) {
	db := testDB(t)
	jugador := seedUser(t, db, "Ana", "jugador")
	admin := seedUser(t, db, "Root", "admin")

	propia := seedCancha(t, db, cancha.EstadoDisponible, true)
	propia.CreadorID = admin.ID
	require.NoError(t, db.Save(propia).Error)

	ajena := seedCancha(t, db, cancha.EstadoDisponible, true)

	repo := NewReservaRepository(db)
	require.NoError(t, repo.Create(nuevaReserva(jugador.ID, propia.ID)))
	require.NoError(t, repo.Create(nuevaReserva(jugador.ID, ajena.ID)))

	w := doJSON(setupRouter(db, admin), http.MethodGet, "/reservas/mis-canchas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Only reservas against the admin's own canchas are listed.
	data := envelope(t, w)["data"].([]any)
	require.Len(t, data, 1)
	canchaResumen := data[0].(map[string]any)["cancha"].(map[string]any)
	assert.Equal(t, float64(propia.ID), canchaResumen["id"])
}

func TestActualizarReservaNuevaCanchaNoDisponible(t *testing.T) {
	db := testDB(t)
	dueno := seedUser(t, db, "Ana", "jugador")
	r := setupRouter(db, dueno)

	repo := NewReservaRepository(db)
	reserva := nuevaReserva(dueno.ID, seedCancha(t, db, cancha.EstadoDisponible, true).ID)
	require.NoError(t, repo.Create(reserva))

	cerrada := seedCancha(t, db, cancha.EstadoMantenimiento, true)
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/reservas/%d", reserva.ID), map[string]any{"cancha": cerrada.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "La nueva cancha no está disponible", envelope(t, w)["message"])
}
