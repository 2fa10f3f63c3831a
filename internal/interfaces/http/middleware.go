package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

const actorLocalsKey = "actor"

// ActorMiddleware extrae la atribución del actor del header X-Actor y la deja
// en locals. El motor usa este valor en las filas de auditoría; si viene
// vacío, las filas generadas por el servidor quedan atribuidas a "system".
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(actorLocalsKey, c.Get("X-Actor"))
		return c.Next()
	}
}

// GetActor devuelve el actor de la petición actual ("" si no se envió).
func GetActor(c *fiber.Ctx) string {
	if v, ok := c.Locals(actorLocalsKey).(string); ok {
		return v
	}
	return ""
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
