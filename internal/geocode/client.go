package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"github.com/geocode-microservice/internal/pkg/httpclient"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of a non-2xx body ends up in error details.
const maxErrorBody = 512

// Doer performs the HTTP exchange. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Stage - position of a call in the geocode pipeline
type Stage int

const (
	StageNotStarted Stage = iota
	StageValidatingKey
	StageValidatingParameters
	StageBuildingURL
	StageAwaitingResponse
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageNotStarted:
		return "not_started"
	case StageValidatingKey:
		return "validating_key"
	case StageValidatingParameters:
		return "validating_parameters"
	case StageBuildingURL:
		return "building_url"
	case StageAwaitingResponse:
		return "awaiting_response"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ClientConfig - endpoint settings of the client
type ClientConfig struct {
	BaseURL string
}

// Client - Google Maps Geocoding API client
type Client struct {
	doer    Doer
	baseURL string
	logger  *zap.Logger
}

// NewClient creates a client sending requests through doer.
func NewClient(cfg ClientConfig, doer Doer, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		doer:    doer,
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// Geocode validates req, builds the request URL and performs the GET.
//
// The key is checked before anything else, so a call without a key reports
// MISSING_CREDENTIAL even when other parameters are malformed. Validation is
// fail-fast. A non-OK API status is not an error here: the parsed response is
// returned as is, see Response.Err.
func (c *Client) Geocode(ctx context.Context, req Request, format Format) (*Result, error) {
	stage := StageValidatingKey
	c.logger.Debug("Geocode started", zap.Stringer("stage", stage))

	fail := func(err error) (*Result, error) {
		c.logger.Debug("Geocode failed",
			zap.Stringer("stage", StageFailed),
			zap.Stringer("failed_in", stage),
			zap.Error(err))
		if appErr, ok := apperrors.FromError(err); ok {
			return nil, appErr.WithDetail("stage", stage.String())
		}
		return nil, err
	}

	if strings.TrimSpace(req.Key) == "" {
		return fail(apperrors.MissingCredential())
	}

	stage = StageValidatingParameters
	address, err := ValidateAddress(req.Address)
	if err != nil {
		return fail(err)
	}
	bounds, err := ValidateBounds(req.Bounds)
	if err != nil {
		return fail(err)
	}
	language, err := ValidateLanguage(req.Language)
	if err != nil {
		return fail(err)
	}
	region, err := ValidateRegion(req.Region)
	if err != nil {
		return fail(err)
	}
	components, err := ValidateComponents(req.Components)
	if err != nil {
		return fail(err)
	}
	if format != FormatParsed && format != FormatRaw {
		return fail(apperrors.InvalidArgument("format", `"parsed" or "raw"`))
	}

	stage = StageBuildingURL
	target, err := BuildURL(c.baseURL, requestParams(address, bounds, language, region, components, req.Key))
	if err != nil {
		return fail(err)
	}

	stage = StageAwaitingResponse
	c.logger.Debug("Calling Geocoding API",
		zap.Stringer("stage", stage),
		zap.String("url", httpclient.RedactRawURL(target)),
		zap.Stringer("format", format))

	result, err := c.fetch(ctx, target, format)
	if err != nil {
		return fail(err)
	}

	c.logger.Debug("Geocode finished", zap.Stringer("stage", StageDone))
	return result, nil
}

func (c *Client) fetch(ctx context.Context, target string, format Format) (*Result, error) {
	if c.doer == nil {
		return nil, apperrors.TransportFailure("no HTTP transport configured", nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.TransportFailure("failed to create request", httpclient.RedactError(err))
	}

	start := time.Now()
	resp, err := c.doer.Do(httpReq)
	if err != nil {
		// *url.Error carries the full request URL, key included
		err = httpclient.RedactError(err)
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, apperrors.TransportFailure("failed to execute request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, apperrors.TransportFailure("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", truncate(body, maxErrorBody)))
		return nil, apperrors.TransportFailure(
			fmt.Sprintf("geocoding API error: status %d", resp.StatusCode), nil).
			WithDetails(map[string]interface{}{
				"status_code": resp.StatusCode,
				"body":        truncate(body, maxErrorBody),
			})
	}

	c.logger.Debug("Geocoding API responded",
		zap.Int("status_code", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	if format == FormatRaw {
		return &Result{Format: FormatRaw, Raw: string(body)}, nil
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, apperrors.TransportFailure("failed to decode response", err)
	}

	return &Result{Format: FormatParsed, Parsed: &parsed}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
