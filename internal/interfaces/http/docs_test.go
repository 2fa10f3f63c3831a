package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// Sin el JSON generado en disco el visor no se monta y el arranque no aborta:
// el middleware hace os.Stat del archivo al construirse.
func TestDocs_SinArchivoGeneradoSeOmite(t *testing.T) {
	app := fiber.New()
	antes := app.HandlersCount()

	require.NotPanics(t, func() {
		apphttp.Docs(app, "Almacen API", filepath.Join(t.TempDir(), "swagger.json"))
	})
	assert.Equal(t, antes, app.HandlersCount(), "sin archivo no debe registrarse el middleware")

	// El resto de la aplicación sigue sirviendo.
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDocs_ConArchivoGeneradoSeMonta(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(spec, []byte(`{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{}}`), 0o644))

	app := fiber.New()
	antes := app.HandlersCount()
	apphttp.Docs(app, "Almacen API", spec)
	assert.Greater(t, app.HandlersCount(), antes, "con archivo presente el middleware se registra")
}
