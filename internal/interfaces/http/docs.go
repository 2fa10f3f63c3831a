package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// Docs monta el visor Swagger en /docs sobre el JSON generado por swag. Si el
// archivo no está en disco el montaje se omite: el middleware hace os.Stat al
// construirse y abortaría el arranque por un artefacto de documentación.
func Docs(app *fiber.App, title, specPath string) {
	if _, err := os.Stat(specPath); err != nil {
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    title,
	}))
}
