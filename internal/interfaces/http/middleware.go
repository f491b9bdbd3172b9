package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// HeaderOperator nombre del operador del dispositivo (fiscal, transportista o balanza).
// No es autenticación: solo se usa para completar createdBy/operatorName.
const HeaderOperator = "X-Operator-Name"

// LocalOperator key en c.Locals.
const LocalOperator = "operator_name"

// OperatorMiddleware copia el header del operador a c.Locals.
func OperatorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if name := strings.TrimSpace(c.Get(HeaderOperator)); name != "" {
			c.Locals(LocalOperator, name)
		}
		return c.Next()
	}
}

// GetOperator devuelve el operador del contexto (después de OperatorMiddleware).
func GetOperator(c *fiber.Ctx) string {
	v := c.Locals(LocalOperator)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequestLogger registra cada petición con zerolog.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// El ErrorHandler de Fiber escribe la respuesta después; se registra el error aquí.
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("petición fallida")
			return err
		}
		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return nil
	}
}
