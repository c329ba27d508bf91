package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocode-microservice/internal/delivery/http/handler"
	"github.com/geocode-microservice/internal/geocode"
	apperrors "github.com/geocode-microservice/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// MockGeocoder is a mock of handler.Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, req geocode.Request, format geocode.Format) (*geocode.Result, error) {
	args := m.Called(ctx, req, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocode.Result), args.Error(1)
}

type envelope struct {
	Data  *geocode.Response   `json:"data"`
	Meta  map[string]int      `json:"meta"`
	Error *apperrors.AppError `json:"error"`
}

func newApp(g handler.Geocoder, defaultKey string) *fiber.App {
	app := fiber.New()
	h := handler.NewGeocodeHandler(g, defaultKey, zap.NewNop())
	app.Get("/api/v1/geocode", h.Geocode)
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) (*http.Response, envelope, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	_ = json.Unmarshal(body, &env)
	return resp, env, string(body)
}

func TestGeocodeHandler_Geocode(t *testing.T) {
	parsed := &geocode.Response{
		Status: geocode.StatusOK,
		Results: []maps.GeocodingResult{{
			FormattedAddress: "Brunton Ave, Richmond VIC 3002, Australia",
			Geometry:         maps.AddressGeometry{Location: maps.LatLng{Lat: -37.8199669, Lng: 144.9834493}},
		}},
	}

	t.Run("parsed", func(t *testing.T) {
		g := &MockGeocoder{}
		g.On("Geocode", mock.Anything, mock.MatchedBy(func(req geocode.Request) bool {
			return req.Address == "MCG, Melbourne" &&
				req.Key == "query_key" &&
				req.Bounds != nil && req.Bounds.NorthEast.Lng == 145.0 &&
				len(req.Components) == 2 && req.Components[1].Component == maps.ComponentCountry &&
				req.Language == "en" && req.Region == "au"
		}), geocode.FormatParsed).Return(&geocode.Result{Format: geocode.FormatParsed, Parsed: parsed}, nil)

		app := newApp(g, "default_key")
		resp, env, _ := doGet(t, app, "/api/v1/geocode?address=MCG,%20Melbourne&key=query_key"+
			"&bounds=-37.9,144.9%7C-37.7,145.0&components=postal_code:3002%7Ccountry:AU&language=en&region=au")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, env.Data)
		require.Len(t, env.Data.Results, 1)
		assert.InDelta(t, -37.82, env.Data.Results[0].Geometry.Location.Lat, 0.01)
		assert.Equal(t, 1, env.Meta["total"])
		g.AssertExpectations(t)
	})

	t.Run("raw uses the default key", func(t *testing.T) {
		raw := `{"results":[],"status":"ZERO_RESULTS"}`
		g := &MockGeocoder{}
		g.On("Geocode", mock.Anything, mock.MatchedBy(func(req geocode.Request) bool {
			return req.Key == "default_key"
		}), geocode.FormatRaw).Return(&geocode.Result{Format: geocode.FormatRaw, Raw: raw}, nil)

		app := newApp(g, "default_key")
		resp, _, body := doGet(t, app, "/api/v1/geocode?address=nowhere&format=raw")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, raw, body)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")
	})

	t.Run("missing key wins over malformed parameters", func(t *testing.T) {
		g := &MockGeocoder{}
		app := newApp(g, "")
		resp, env, _ := doGet(t, app, "/api/v1/geocode?bounds=garbage&components=nope&format=xml")

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperrors.CodeMissingCredential, env.Error.Code)
		g.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed bounds", func(t *testing.T) {
		g := &MockGeocoder{}
		app := newApp(g, "default_key")
		resp, env, _ := doGet(t, app, "/api/v1/geocode?address=mcg&bounds=1,2,3%7C4,5")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bounds", env.Error.Details["param"])
		g.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("client error is mapped to its status", func(t *testing.T) {
		g := &MockGeocoder{}
		g.On("Geocode", mock.Anything, mock.Anything, geocode.FormatParsed).
			Return(nil, apperrors.TransportFailure("failed to execute request", errors.New("timeout")))

		app := newApp(g, "default_key")
		resp, env, _ := doGet(t, app, "/api/v1/geocode?address=mcg")

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperrors.CodeTransportFailure, env.Error.Code)
	})

	t.Run("unknown error", func(t *testing.T) {
		g := &MockGeocoder{}
		g.On("Geocode", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		app := newApp(g, "default_key")
		resp, env, _ := doGet(t, app, "/api/v1/geocode?address=mcg")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		require.NotNil(t, env.Error)
		assert.Equal(t, apperrors.CodeInternalServer, env.Error.Code)
	})
}
