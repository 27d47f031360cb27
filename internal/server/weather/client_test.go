package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMeteoClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))
		w.Write([]byte(`{"results":[{"name":"London","latitude":51.5072,"longitude":-0.1276,"timezone":"Europe/London"}]}`))
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL, srv.URL)
	loc, err := c.Geocode(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", loc.Name)
	assert.InDelta(t, 51.5072, loc.Latitude, 1e-9)
	assert.InDelta(t, -0.1276, loc.Longitude, 1e-9)
	assert.Equal(t, "Europe/London", loc.Timezone)
}

func TestOpenMeteoClient_Geocode_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms":0.5}`))
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL, srv.URL)
	_, err := c.Geocode(context.Background(), "NoSuchCityXYZ")
	assert.ErrorIs(t, err, ErrCityNotFound)
}

func TestOpenMeteoClient_Geocode_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL, srv.URL)
	_, err := c.Geocode(context.Background(), "London")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCityNotFound)
}

func TestOpenMeteoClient_FetchDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, forecastDailyVars, r.URL.Query().Get("daily"))
		w.Write([]byte(`{
			"timezone": "Europe/London",
			"daily": {
				"time": ["2026-08-30", "2026-08-31"],
				"temperature_2m_max": [21.4, 19.8],
				"temperature_2m_min": [12.1, 11.0],
				"precipitation_sum": [0.0, 3.2],
				"pressure_msl_mean": [1016.2, 1011.7],
				"wind_speed_10m_max": [18.4, 26.1],
				"relative_humidity_2m_max": [74, 88]
			}
		}`))
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL, srv.URL)
	recs, err := c.FetchDaily(context.Background(), &Location{Latitude: 51.5, Longitude: -0.13})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "2026-08-30", recs[0].Date)
	assert.Equal(t, "Europe/London", recs[0].Timezone)
	assert.InDelta(t, 21.4, recs[0].TempMaxC, 1e-9)
	assert.InDelta(t, 12.1, recs[0].TempMinC, 1e-9)
	assert.InDelta(t, 0.0, recs[0].PrecipMM, 1e-9)
	assert.InDelta(t, 1016.2, recs[0].PressureHPa, 1e-9)
	assert.InDelta(t, 18.4, recs[0].WindMaxKMH, 1e-9)
	assert.Equal(t, int32(74), recs[0].HumidityPct)
	assert.Equal(t, int32(88), recs[1].HumidityPct)
	assert.False(t, recs[0].FetchedAt.IsZero())
}

func TestOpenMeteoClient_FetchDaily_RaggedArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"timezone": "UTC",
			"daily": {
				"time": ["2026-08-30", "2026-08-31"],
				"temperature_2m_max": [21.4]
			}
		}`))
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL, srv.URL)
	recs, err := c.FetchDaily(context.Background(), &Location{})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.InDelta(t, 0.0, recs[1].TempMaxC, 1e-9)
}
