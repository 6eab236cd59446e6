package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"catalogo_equipamentos/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := newApplication(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return NewRouter(app)
}

func memoryConfig() *config.Config {
	return &config.Config{
		Store:   config.Store{Driver: config.StoreMemory},
		Cache:   config.Cache{Size: 16, TTL: time.Minute},
		Catalog: config.Catalog{PageSize: 9},
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func exerciseLifecycle(t *testing.T, r *gin.Engine) {
	t.Helper()

	w := serve(r, http.MethodPost, "/v1/equipments", `{"type":"Ar Condicionado","marca":"Daikin","modelo":"Perfera","seer":16}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = serve(r, http.MethodGet, "/v1/equipments?q=dai&type=Todos", "")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.EqualValues(t, 1, page["totalItems"])

	w = serve(r, http.MethodPatch, "/v1/equipments/"+id, `{"type":"Esquentador","energia":"Gás Natural"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, "Esquentador", updated["type"])
	assert.Equal(t, "Gás Natural", updated["energia"])
	assert.NotContains(t, updated, "seer")

	w = serve(r, http.MethodGet, "/v1/equipments/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Esquentador", decode(t, w)["type"])

	w = serve(r, http.MethodDelete, "/v1/equipments/"+id, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = serve(r, http.MethodGet, "/v1/equipments/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, http.MethodDelete, "/v1/equipments/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MemoryStore(t *testing.T) {
	r := newTestRouter(t, memoryConfig())

	t.Run("ping", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/ping", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	})

	t.Run("lifecycle", func(t *testing.T) {
		exerciseLifecycle(t, r)
	})

	t.Run("validation error", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/equipments", `{"type":"Caldeira","marca":" "}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
		assert.Len(t, body["details"], 2)
	})

	t.Run("equipment types", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/equipment-types", "")
		require.Equal(t, http.StatusOK, w.Code)
		var types []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
		assert.Len(t, types, 5)
	})

	t.Run("metrics", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "catalogo_equipment_changes_total"))
		assert.True(t, strings.Contains(w.Body.String(), `route="/v1/equipments/:id"`))
	})
}

func TestRouter_SQLiteStore(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = config.StoreSQLite
	cfg.SQL.SQLitePath = filepath.Join(t.TempDir(), "catalogo.db")
	cfg.Cache.Size = 0

	exerciseLifecycle(t, newTestRouter(t, cfg))
}

func TestRouter_FileStore(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = config.StoreFile
	cfg.Store.DataFile = filepath.Join(t.TempDir(), "equipments.json")

	exerciseLifecycle(t, newTestRouter(t, cfg))
}

func TestNewApplication_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = "redis"

	_, err := newApplication(context.Background(), cfg)
	assert.ErrorContains(t, err, `unsupported store driver "redis"`)
}
