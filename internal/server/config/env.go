package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. Variables that
// are unset or empty leave the current values untouched.
func parseEnv(cfg *Config) {
	envString(&cfg.EndpointAddrGRPC, "ENDPOINT_ADDR_GRPC")

	envString(&cfg.AWSRegion, "AWS_REGION")
	envString(&cfg.AWSEndpointURL, "AWS_ENDPOINT_URL")
	envString(&cfg.AWSAccessKeyID, "AWS_ACCESS_KEY_ID")
	envString(&cfg.AWSSecretAccessKey, "AWS_SECRET_ACCESS_KEY")

	envString(&cfg.UsersTable, "USERS_TABLE")
	envString(&cfg.APIKeysTable, "API_KEYS_TABLE")
	envString(&cfg.VerificationsTable, "VERIFICATIONS_TABLE")
	envString(&cfg.WeatherTable, "WEATHER_TABLE")

	envString(&cfg.APIKeyHeader, "API_KEY_HEADER")
	envString(&cfg.UserEmailHeader, "USER_EMAIL_HEADER")
	envString(&cfg.PublicMethods, "PUBLIC_METHODS")
	envString(&cfg.APIKeyMethods, "API_KEY_METHODS")

	envDuration(&cfg.VerificationCodeTTL, "VERIFICATION_CODE_TTL")
	envDuration(&cfg.APIKeyTTL, "API_KEY_TTL")

	envString(&cfg.SMTPHost, "SMTP_HOST")
	envString(&cfg.SMTPPort, "SMTP_PORT")
	envString(&cfg.SMTPFrom, "SMTP_FROM")
	envString(&cfg.SMTPUsername, "SMTP_USERNAME")
	envString(&cfg.SMTPPassword, "SMTP_PASSWORD")

	envString(&cfg.GeocodingBaseURL, "GEOCODING_BASE_URL")
	envString(&cfg.ForecastBaseURL, "FORECAST_BASE_URL")

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
