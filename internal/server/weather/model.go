// Package weather proxies daily forecasts from Open-Meteo, caching each
// (city, date) record in the store so repeat lookups skip the upstream calls.
package weather

import "time"

// DailyRecord is one city-day of forecast data. City is the cache partition
// key (stored lowercase) and Date the sort key in ISO form ("2025-11-18").
type DailyRecord struct {
	City        string    `dynamodbav:"city"`
	Date        string    `dynamodbav:"date"`
	Timezone    string    `dynamodbav:"timezone"`
	TempMaxC    float64   `dynamodbav:"temperature_2m_max_c"`
	TempMinC    float64   `dynamodbav:"temperature_2m_min_c"`
	PrecipMM    float64   `dynamodbav:"precipitation_sum_mm"`
	PressureHPa float64   `dynamodbav:"pressure_msl_mean_hpa"`
	WindMaxKMH  float64   `dynamodbav:"wind_speed_10m_max_kmh"`
	HumidityPct int32     `dynamodbav:"relative_humidity_2m_max_pct"`
	FetchedAt   time.Time `dynamodbav:"fetched_at,unixtime"`
}

// Location is a geocoded place.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	Timezone  string
}
