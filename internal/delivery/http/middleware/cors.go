package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// corsMaxAge - seconds browsers may cache a preflight answer
const corsMaxAge = 600

// CORS - the facade is read-only: GET and preflight only, no credentials,
// and the request id header is readable by browser clients.
func CORS(origins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  fiber.MethodGet + "," + fiber.MethodOptions,
		AllowHeaders:  "Accept,Accept-Language," + RequestIDHeader,
		ExposeHeaders: RequestIDHeader,
		MaxAge:        corsMaxAge,
	})
}
