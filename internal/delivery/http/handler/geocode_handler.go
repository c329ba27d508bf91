package handler

import (
	"context"
	"strings"

	"github.com/geocode-microservice/internal/geocode"
	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"github.com/geocode-microservice/internal/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Geocoder - the geocode entry function as seen by the handler
type Geocoder interface {
	Geocode(ctx context.Context, req geocode.Request, format geocode.Format) (*geocode.Result, error)
}

// GeocodeHandler - exposes the geocode client over HTTP
type GeocodeHandler struct {
	geocoder   Geocoder
	defaultKey string
	logger     *zap.Logger
}

// NewGeocodeHandler - defaultKey is used when a request carries no key; it may be empty.
func NewGeocodeHandler(geocoder Geocoder, defaultKey string, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocoder:   geocoder,
		defaultKey: defaultKey,
		logger:     logger,
	}
}

// Geocode godoc
// @Summary Geocode an address
// @Description Forwards the lookup to the Google Maps Geocoding API. With format=raw the upstream body is returned verbatim.
// @Tags Geocode
// @Produce json
// @Param address query string true "Address to geocode"
// @Param bounds query string false "Viewport bias: lat,lng|lat,lng (south-west|north-east)"
// @Param language query string false "Result language code"
// @Param region query string false "ccTLD region bias"
// @Param components query string false "Component filters: component:value|component:value"
// @Param key query string false "Google Maps API key; the configured key is used when omitted"
// @Param format query string false "parsed or raw" default(parsed)
// @Success 200 {object} utils.SuccessResponse{data=geocode.Response}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/geocode [get]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	key := c.Query("key", h.defaultKey)
	// key precedence holds here as well: no parameter is parsed before the key is known
	if strings.TrimSpace(key) == "" {
		return utils.SendError(c, apperrors.MissingCredential())
	}

	format, err := geocode.ParseFormat(c.Query("format"))
	if err != nil {
		return utils.SendError(c, err)
	}
	bounds, err := geocode.ParseBounds(c.Query("bounds"))
	if err != nil {
		return utils.SendError(c, err)
	}
	components, err := geocode.ParseComponents(c.Query("components"))
	if err != nil {
		return utils.SendError(c, err)
	}

	req := geocode.Request{
		Address:    c.Query("address"),
		Bounds:     bounds,
		Language:   c.Query("language"),
		Region:     c.Query("region"),
		Components: components,
		Key:        key,
	}

	result, err := h.geocoder.Geocode(c.UserContext(), req, format)
	if err != nil {
		h.logger.Warn("Geocode request failed",
			zap.String("request_id", utils.RequestID(c)),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	if result.Format == geocode.FormatRaw {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(result.Raw)
	}

	return utils.SendSuccess(c, result.Parsed, &utils.Meta{
		Total: len(result.Parsed.Results),
	})
}
