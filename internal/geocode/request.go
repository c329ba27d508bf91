// Package geocode forwards address lookups to the Google Maps Geocoding API.
//
// A call runs a fixed pipeline: the API key is checked, every optional
// parameter goes through its validator, the surviving values are encoded into
// a query string and a single GET is issued. The first failure ends the call.
package geocode

import (
	"strconv"
	"strings"

	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"googlemaps.github.io/maps"
)

const (
	boundsFormat     = `"lat,lng|lat,lng" (south-west|north-east)`
	componentsFormat = `"component:value|component:value"`
)

// Request - the full parameter set of one geocode call
type Request struct {
	Address    string
	Bounds     *Bounds
	Language   string
	Region     string
	Components []ComponentFilter
	Key        string
}

// Bounds - viewport hint, south-west and north-east corners
type Bounds struct {
	SouthWest maps.LatLng
	NorthEast maps.LatLng
}

// String serializes b as "lat1,lng1|lat2,lng2".
func (b Bounds) String() string {
	return formatPoint(b.SouthWest) + "|" + formatPoint(b.NorthEast)
}

// ComponentFilter restricts results to one administrative area, postal code, route, locality or country.
type ComponentFilter struct {
	Component maps.Component
	Value     string
}

func (f ComponentFilter) String() string {
	return string(f.Component) + ":" + f.Value
}

// ParseBounds reads the "lat,lng|lat,lng" form. Blank input means no bounds.
// Ranges are not checked here; see ValidateBounds.
func ParseBounds(s string) (*Bounds, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	points := strings.Split(s, "|")
	if len(points) != 2 {
		return nil, apperrors.InvalidArgument("bounds", "exactly two points "+boundsFormat)
	}

	sw, err := parsePoint(points[0])
	if err != nil {
		return nil, err
	}
	ne, err := parsePoint(points[1])
	if err != nil {
		return nil, err
	}

	return &Bounds{SouthWest: sw, NorthEast: ne}, nil
}

func parsePoint(s string) (maps.LatLng, error) {
	coords := strings.Split(s, ",")
	if len(coords) != 2 {
		return maps.LatLng{}, apperrors.InvalidArgument("bounds", "two numeric components per point "+boundsFormat)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return maps.LatLng{}, apperrors.InvalidArgument("bounds", "numeric latitude "+boundsFormat)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return maps.LatLng{}, apperrors.InvalidArgument("bounds", "numeric longitude "+boundsFormat)
	}

	return maps.LatLng{Lat: lat, Lng: lng}, nil
}

func formatPoint(p maps.LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// ParseComponents reads the "component:value|..." form keeping pair order.
// Blank input means no filters. Component names are checked by ValidateComponents.
func ParseComponents(s string) ([]ComponentFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	pairs := strings.Split(s, "|")
	filters := make([]ComponentFilter, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return nil, apperrors.InvalidArgument("components", "component and value columns "+componentsFormat)
		}
		filters = append(filters, ComponentFilter{
			Component: maps.Component(name),
			Value:     value,
		})
	}

	return filters, nil
}
