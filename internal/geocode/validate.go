package geocode

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"github.com/geocode-microservice/internal/pkg/validator"
	"googlemaps.github.io/maps"
)

// Validators return the serialized parameter value; "" means the parameter is absent.

// ValidateAddress trims and lower-cases the address.
func ValidateAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if !utf8.ValidString(trimmed) {
		return "", apperrors.InvalidArgument("address", "UTF-8 text")
	}
	if err := validator.Var(trimmed, "required"); err != nil {
		return "", apperrors.InvalidArgument("address", "non-empty text")
	}
	return strings.ToLower(trimmed), nil
}

// ValidateBounds checks both corners lie in latitude [-90, 90] and longitude [-180, 180].
func ValidateBounds(b *Bounds) (string, error) {
	if b == nil {
		return "", nil
	}
	if err := validatePoint("south-west", b.SouthWest); err != nil {
		return "", err
	}
	if err := validatePoint("north-east", b.NorthEast); err != nil {
		return "", err
	}
	return b.String(), nil
}

func validatePoint(corner string, p maps.LatLng) error {
	if err := validator.Var(p.Lat, "min=-90,max=90"); err != nil {
		return apperrors.InvalidArgument("bounds", corner+" latitude in [-90, 90] "+boundsFormat).
			WithDetail("value", p.Lat)
	}
	if err := validator.Var(p.Lng, "min=-180,max=180"); err != nil {
		return apperrors.InvalidArgument("bounds", corner+" longitude in [-180, 180] "+boundsFormat).
			WithDetail("value", p.Lng)
	}
	return nil
}

// ValidateLanguage passes the code through; the API rejects unsupported codes itself.
func ValidateLanguage(language string) (string, error) {
	return validateText("language", language)
}

// ValidateRegion passes the ccTLD-style region code through.
func ValidateRegion(region string) (string, error) {
	return validateText("region", region)
}

func validateText(param, value string) (string, error) {
	if !utf8.ValidString(value) {
		return "", apperrors.InvalidArgument(param, "UTF-8 text")
	}
	return value, nil
}

// ValidateComponents joins the filters as "component:value|component:value".
func ValidateComponents(filters []ComponentFilter) (string, error) {
	if len(filters) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if err := validator.Var(f.Component, validator.ComponentTag); err != nil {
			return "", apperrors.InvalidArgument("components",
				"component one of route, locality, administrative_area, postal_code, country").
				WithDetail("component", string(f.Component))
		}
		if f.Value == "" || !utf8.ValidString(f.Value) {
			return "", apperrors.InvalidArgument("components", "a value for every component "+componentsFormat).
				WithDetail("component", string(f.Component))
		}
		if strings.Contains(f.Value, "|") {
			return "", apperrors.InvalidArgument("components", "values without the \"|\" pair separator "+componentsFormat).
				WithDetail("component", string(f.Component))
		}
		parts = append(parts, f.String())
	}

	return strings.Join(parts, "|"), nil
}
