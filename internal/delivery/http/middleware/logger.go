package middleware

import (
	"time"

	"github.com/geocode-microservice/internal/pkg/httpclient"
	"github.com/geocode-microservice/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Logger - access log. The query string may carry an API key, so it is redacted.
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Info("HTTP request",
			zap.String("request_id", utils.RequestID(c)),
			zap.String("method", c.Method()),
			zap.String("url", httpclient.RedactRawURL(c.OriginalURL())),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)

		return err
	}
}
