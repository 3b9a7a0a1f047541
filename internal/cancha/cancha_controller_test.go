package cancha

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmartinezc/canchas-api/internal/middleware"
	"github.com/dmartinezc/canchas-api/internal/user"
)

func setupRouter(db *gorm.DB, actor *user.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if actor != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.AuthUserKey, actor)
		})
	}

	controller := NewCanchaController(NewCanchaRepository(db), DefaultOptions())
	r.POST("/canchas", controller.CrearCancha)
	r.GET("/canchas/mis-canchas", controller.MisCanchas)
	r.GET("/canchas/publicas", controller.CanchasPublicas)
	r.GET("/canchas/publica/:id", controller.CanchaPublica)
	r.GET("/canchas/opciones", controller.Opciones)
	r.GET("/canchas/:id", controller.CanchaPorID)
	r.PUT("/canchas/:id", controller.EditarCancha)
	r.DELETE("/canchas/:id", controller.EliminarCancha)
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

func adminUser(t *testing.T, db *gorm.DB, id uint) *user.User {
	t.Helper()
	u := &user.User{
		Nombre:   fmt.Sprintf("Admin %d", id),
		Email:    fmt.Sprintf("admin%d@example.com", id),
		Password: "x",
		Role:     "admin",
		Estado:   "activo",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func canchaBody(nombre string) map[string]any {
	return map[string]any{
		"nombre":    nombre,
		"tipo":      "Fútbol",
		"precio":    20000,
		"ubicacion": "Centro",
		"capacidad": 22,
		"horarios": []map[string]any{
			{"dia": "Lunes", "desde": "08:00", "hasta": "10:00"},
		},
	}
}

func TestCrearCancha(t *testing.T) {
	db := testDB(t)
	admin := adminUser(t, db, 1)
	r := setupRouter(db, admin)

	w := doJSON(r, http.MethodPost, "/canchas", canchaBody("La Bombonera"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := envelope(t, w)["data"].(map[string]any)
	assert.Equal(t, "disponible", data["estado"])
	assert.Equal(t, true, data["disponible"])
	assert.Equal(t, "$ 20.000", data["precioFormateado"])
	assert.Equal(t, float64(admin.ID), data["creador"].(map[string]any)["id"])
}

func TestCrearCanchaNombreDuplicado(t *testing.T) {
	db := testDB(t)
	r := setupRouter(db, adminUser(t, db, 1))

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/canchas", canchaBody("Única")).Code)

	w := doJSON(r, http.MethodPost, "/canchas", canchaBody("Única"))
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Ya existe una cancha con ese nombre", envelope(t, w)["message"])
}

func TestCrearCanchaInvalida(t *testing.T) {
	db := testDB(t)
	r := setupRouter(db, adminUser(t, db, 1))

	body := canchaBody("Cancha inválida")
	body["precio"] = 500
	body["tipo"] = "Golf"

	w := doJSON(r, http.MethodPost, "/canchas", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, envelope(t, w)["errors"].([]any), 2)
}

func TestEditarCanchaAjena(t *testing.T) {
	db := testDB(t)
	propietario := adminUser(t, db, 1)
	intruso := adminUser(t, db, 2)

	c := nuevaCancha("Cancha del propietario", propietario.ID)
	require.NoError(t, NewCanchaRepository(db).Create(c))

	// Another admin editing a foreign cancha sees not-found, never the
	// cancha itself.
	w := doJSON(setupRouter(db, intruso), http.MethodPut, fmt.Sprintf("/canchas/%d", c.ID),
		map[string]any{"precio": 99000})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cancha no encontrada", envelope(t, w)["message"])

	intacta, err := NewCanchaRepository(db).GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 20000, intacta.Precio)
}

func TestEditarCancha(t *testing.T) {
	db := testDB(t)
	admin := adminUser(t, db, 1)
	r := setupRouter(db, admin)

	repo := NewCanchaRepository(db)
	c := nuevaCancha("Cancha editable", admin.ID)
	require.NoError(t, repo.Create(c))

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/canchas/%d", c.ID), map[string]any{
		"precio": 30000,
		"estado": EstadoMantenimiento,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := envelope(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(30000), data["precio"])
	assert.Equal(t, false, data["disponible"])
}

func TestEditarCanchaPrecioInvalido(t *testing.T) {
	db := testDB(t)
	admin := adminUser(t, db, 1)
	r := setupRouter(db, admin)

	c := nuevaCancha("Cancha barata", admin.ID)
	require.NoError(t, NewCanchaRepository(db).Create(c))

	// The merged record is re-validated in full.
	w := doJSON(r, http.MethodPut, fmt.Sprintf("/canchas/%d", c.ID), map[string]any{"precio": 100})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "El precio mínimo es 1000", envelope(t, w)["message"])
}

func TestEliminarCancha(t *testing.T) {
	db := testDB(t)
	admin := adminUser(t, db, 1)
	r := setupRouter(db, admin)

	c := nuevaCancha("Cancha a eliminar", admin.ID)
	require.NoError(t, NewCanchaRepository(db).Create(c))

	require.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, fmt.Sprintf("/canchas/%d", c.ID), nil).Code)

	// A second delete reports not-found.
	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/canchas/%d", c.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCanchasPublicasSinAutenticacion(t *testing.T) {
	db := testDB(t)
	require.NoError(t, NewCanchaRepository(db).Create(nuevaCancha("Cancha pública", 1)))

	r := setupRouter(db, nil)
	w := doJSON(r, http.MethodGet, "/canchas/publicas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := envelope(t, w)
	assert.Equal(t, "1 cancha(s) encontrada(s)", resp["message"])
	assert.Len(t, resp["data"].([]any), 1)
}

func TestOpciones(t *testing.T) {
	r := setupRouter(testDB(t), nil)
	w := doJSON(r, http.MethodGet, "/canchas/opciones", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelope(t, w)["data"].(map[string]any)
	assert.Len(t, data["tipos"].([]any), 4)
	assert.Len(t, data["ubicaciones"].([]any), 5)
	assert.Len(t, data["dias"].([]any), 7)
}
