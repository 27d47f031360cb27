// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import (
	"time"

	"github.com/climatechart/server/internal/common"
)

// Config holds runtime settings for the ClimateChart server.
//
// PublicMethods and APIKeyMethods are comma-separated lists of fully
// qualified gRPC method names ("/user.UserService/Login"). They are parsed
// exactly once, at startup, into the access policy's method sets.
type Config struct {
	EndpointAddrGRPC string

	AWSRegion          string
	AWSEndpointURL     string // empty in prod, set to a LocalStack URL in dev
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	UsersTable         string
	APIKeysTable       string
	VerificationsTable string
	WeatherTable       string

	APIKeyHeader    string
	UserEmailHeader string
	PublicMethods   string
	APIKeyMethods   string

	VerificationCodeTTL time.Duration
	APIKeyTTL           time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	GeocodingBaseURL string
	ForecastBaseURL  string

	RateLimitRPS   float64
	RateLimitBurst int
}

// defaultPublicMethods mirrors the deployed classification: the whole user
// surface plus the read-only daily forecast are reachable without credentials.
const defaultPublicMethods = "/user.UserService/SignUp," +
	"/user.UserService/Login," +
	"/user.UserService/SendVerificationEmail," +
	"/user.UserService/ConfirmEmail," +
	"/user.UserService/GetMe," +
	"/user.UserService/CreateApiKey," +
	"/user.UserService/GetApiKey," +
	"/user.UserService/Logout," +
	"/weather.WeatherService/GetDaily"

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":9092"

	c.AWSRegion = "us-east-1"
	c.AWSEndpointURL = ""
	c.AWSAccessKeyID = ""
	c.AWSSecretAccessKey = ""

	c.UsersTable = "users"
	c.APIKeysTable = "api_keys"
	c.VerificationsTable = "email_verifications"
	c.WeatherTable = "weather"

	c.APIKeyHeader = common.APIKeyHeaderName
	c.UserEmailHeader = common.UserEmailHeaderName
	c.PublicMethods = defaultPublicMethods
	c.APIKeyMethods = ""

	c.VerificationCodeTTL = 15 * time.Minute
	c.APIKeyTTL = 24 * time.Hour

	c.SMTPHost = "localhost"
	c.SMTPPort = "1025"
	c.SMTPFrom = "noreply@climatechart.io"
	c.SMTPUsername = ""
	c.SMTPPassword = ""

	c.GeocodingBaseURL = "https://geocoding-api.open-meteo.com"
	c.ForecastBaseURL = "https://api.open-meteo.com"

	c.RateLimitRPS = 20
	c.RateLimitBurst = 40
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, then environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
