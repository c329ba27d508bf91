package geocode

import (
	"net/url"
	"strings"

	apperrors "github.com/geocode-microservice/internal/pkg/errors"
)

// DefaultBaseURL - Google Maps Geocoding JSON endpoint
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Param is one query parameter with its already validated value.
type Param struct {
	Name  string
	Value string
}

// Params keeps parameters in the order they are emitted.
type Params []Param

// Encode joins the non-empty parameters as name=value with values percent-encoded.
// Empty values are skipped, never emitted as bare keys.
func (p Params) Encode() string {
	var sb strings.Builder
	for _, param := range p {
		if param.Value == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

// BuildURL appends the encoded parameters to base.
func BuildURL(base string, params Params) (string, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", apperrors.InvalidArgument("base_url", "absolute URL such as "+DefaultBaseURL)
	}

	query := params.Encode()
	if query == "" {
		return base, nil
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}

	return base + sep + query, nil
}

func requestParams(address, bounds, language, region, components, key string) Params {
	return Params{
		{Name: "address", Value: address},
		{Name: "bounds", Value: bounds},
		{Name: "language", Value: language},
		{Name: "region", Value: region},
		{Name: "components", Value: components},
		{Name: "key", Value: key},
	}
}
