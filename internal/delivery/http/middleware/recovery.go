package middleware

import (
	"fmt"

	"github.com/geocode-microservice/internal/pkg/httpclient"
	"github.com/geocode-microservice/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Recovery turns handler panics into 500 responses and logs them with the request id.
// The stack goes to the log, not to stderr; the URL is redacted because it may carry a key.
func Recovery(logger *zap.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Error("Panic recovered",
				zap.String("request_id", utils.RequestID(c)),
				zap.String("url", httpclient.RedactRawURL(c.OriginalURL())),
				zap.String("panic", fmt.Sprint(e)),
				zap.StackSkip("stack", 3),
			)
		},
	})
}
