package geocode

import (
	"strings"

	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"googlemaps.github.io/maps"
)

// Geocoding API status values.
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverDailyLimit = "OVER_DAILY_LIMIT"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusUnknownError   = "UNKNOWN_ERROR"
)

// Format selects the shape of a Result.
type Format int

const (
	// FormatParsed decodes the body into a Response.
	FormatParsed Format = iota
	// FormatRaw returns the body text untouched.
	FormatRaw
)

func (f Format) String() string {
	switch f {
	case FormatParsed:
		return "parsed"
	case FormatRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseFormat maps "parsed"/"json" and "raw"/"text" to a Format. Blank means parsed.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "parsed", "json":
		return FormatParsed, nil
	case "raw", "text":
		return FormatRaw, nil
	default:
		return 0, apperrors.InvalidArgument("format", `"parsed" or "raw"`)
	}
}

// Response - decoded Geocoding API body
type Response struct {
	Results      []maps.GeocodingResult `json:"results"`
	Status       string                 `json:"status"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}

// Err reports a non-OK status as a REMOTE_API_ERROR. The client never calls it;
// interpreting the status is left to the caller.
func (r *Response) Err() error {
	if r == nil || r.Status == StatusOK {
		return nil
	}
	return apperrors.RemoteAPIError(r.Status, r.ErrorMessage)
}

// Result holds exactly one of Parsed or Raw, according to Format.
type Result struct {
	Format Format
	Parsed *Response
	Raw    string
}
