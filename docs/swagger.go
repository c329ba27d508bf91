// Package docs registers the OpenAPI document of the geocode facade with swag,
// served by fiber-swagger under /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/geocode": {
            "get": {
                "description": "Forwards the lookup to the Google Maps Geocoding API. With format=raw the upstream body is returned verbatim.",
                "produces": ["application/json"],
                "tags": ["Geocode"],
                "summary": "Geocode an address",
                "parameters": [
                    {"type": "string", "description": "Address to geocode", "name": "address", "in": "query", "required": true},
                    {"type": "string", "description": "Viewport bias: lat,lng|lat,lng (south-west|north-east)", "name": "bounds", "in": "query"},
                    {"type": "string", "description": "Result language code", "name": "language", "in": "query"},
                    {"type": "string", "description": "ccTLD region bias", "name": "region", "in": "query"},
                    {"type": "string", "description": "Component filters: component:value|component:value", "name": "components", "in": "query"},
                    {"type": "string", "description": "Google Maps API key; the configured key is used when omitted", "name": "key", "in": "query"},
                    {"type": "string", "default": "parsed", "description": "parsed or raw", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errors.AppError"}}
        },
        "utils.Meta": {
            "type": "object",
            "properties": {"total": {"type": "integer"}}
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Geocode Microservice API",
	Description:      "Forwards address geocoding requests to the Google Maps Geocoding API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
