package validator

import (
	"github.com/go-playground/validator/v10"
	"googlemaps.github.io/maps"
)

// ComponentTag validates a component filter name against the set the Geocoding API accepts.
const ComponentTag = "geocomponent"

var validate *validator.Validate

var components = map[maps.Component]struct{}{
	maps.ComponentRoute:              {},
	maps.ComponentLocality:           {},
	maps.ComponentAdministrativeArea: {},
	maps.ComponentPostalCode:         {},
	maps.ComponentCountry:            {},
}

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation(ComponentTag, isComponent); err != nil {
		panic(err)
	}
}

func isComponent(fl validator.FieldLevel) bool {
	_, ok := components[maps.Component(fl.Field().String())]
	return ok
}

// Validate - struct validation
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Var validates a single value against a tag, e.g. Var(lat, "min=-90,max=90").
func Var(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

// GetValidator - access for custom configuration
func GetValidator() *validator.Validate {
	return validate
}
