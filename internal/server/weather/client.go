package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrCityNotFound is returned when geocoding resolves zero results.
var ErrCityNotFound = errors.New("city not found")

// forecastDailyVars is the daily variable list requested from Open-Meteo,
// in the order the record fields mirror.
const forecastDailyVars = "temperature_2m_max,temperature_2m_min,precipitation_sum,pressure_msl_mean,wind_speed_10m_max,relative_humidity_2m_max"

// Client fetches geocoding and daily-forecast data. Implemented by
// OpenMeteoClient; mocked in tests.
type Client interface {
	Geocode(ctx context.Context, city string) (*Location, error)
	FetchDaily(ctx context.Context, loc *Location) ([]DailyRecord, error)
}

// OpenMeteoClient talks to the Open-Meteo geocoding and forecast APIs.
// Neither endpoint requires credentials.
type OpenMeteoClient struct {
	geocodingBase string
	forecastBase  string
	httpClient    *http.Client
}

func NewOpenMeteoClient(geocodingBase, forecastBase string) *OpenMeteoClient {
	return &OpenMeteoClient{
		geocodingBase: geocodingBase,
		forecastBase:  forecastBase,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
	} `json:"results"`
}

// Geocode resolves a city name to its best match. ErrCityNotFound when the
// API returns no results.
func (c *OpenMeteoClient) Geocode(ctx context.Context, city string) (*Location, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")

	var resp geocodingResponse
	if err := c.getJSON(ctx, c.geocodingBase+"/v1/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrCityNotFound
	}
	r := resp.Results[0]
	return &Location{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
	}, nil
}

type forecastResponse struct {
	Timezone string `json:"timezone"`
	Daily    struct {
		Time         []string  `json:"time"`
		TempMax      []float64 `json:"temperature_2m_max"`
		TempMin      []float64 `json:"temperature_2m_min"`
		Precip       []float64 `json:"precipitation_sum"`
		PressureMean []float64 `json:"pressure_msl_mean"`
		WindMax      []float64 `json:"wind_speed_10m_max"`
		HumidityMax  []int32   `json:"relative_humidity_2m_max"`
	} `json:"daily"`
}

// FetchDaily pulls the daily forecast for a location. The upstream returns
// parallel arrays keyed by date; these are zipped into one record per day.
func (c *OpenMeteoClient) FetchDaily(ctx context.Context, loc *Location) ([]DailyRecord, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", loc.Latitude))
	q.Set("longitude", fmt.Sprintf("%g", loc.Longitude))
	q.Set("daily", forecastDailyVars)
	q.Set("timezone", "auto")

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastBase+"/v1/forecast?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	at := func(vals []float64, i int) float64 {
		if i < len(vals) {
			return vals[i]
		}
		return 0
	}

	now := time.Now()
	recs := make([]DailyRecord, 0, len(resp.Daily.Time))
	for i, date := range resp.Daily.Time {
		rec := DailyRecord{
			Date:        date,
			Timezone:    resp.Timezone,
			TempMaxC:    at(resp.Daily.TempMax, i),
			TempMinC:    at(resp.Daily.TempMin, i),
			PrecipMM:    at(resp.Daily.Precip, i),
			PressureHPa: at(resp.Daily.PressureMean, i),
			WindMaxKMH:  at(resp.Daily.WindMax, i),
			FetchedAt:   now,
		}
		if i < len(resp.Daily.HumidityMax) {
			rec.HumidityPct = resp.Daily.HumidityMax[i]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (c *OpenMeteoClient) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
