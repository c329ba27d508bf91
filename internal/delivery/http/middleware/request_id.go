package middleware

import (
	"github.com/geocode-microservice/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or assigns a new uuid.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(utils.RequestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
