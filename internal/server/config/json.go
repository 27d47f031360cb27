package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/climatechart/server/internal/flagx"
	"github.com/climatechart/server/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields so they can be written
// either as strings ("15m") or as integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`

	AWSRegion          string `json:"aws_region"`
	AWSEndpointURL     string `json:"aws_endpoint_url"`
	AWSAccessKeyID     string `json:"aws_access_key_id"`
	AWSSecretAccessKey string `json:"aws_secret_access_key"`

	UsersTable         string `json:"users_table"`
	APIKeysTable       string `json:"api_keys_table"`
	VerificationsTable string `json:"verifications_table"`
	WeatherTable       string `json:"weather_table"`

	APIKeyHeader    string `json:"api_key_header"`
	UserEmailHeader string `json:"user_email_header"`
	PublicMethods   string `json:"public_methods"`
	APIKeyMethods   string `json:"api_key_methods"`

	VerificationCodeTTL timex.Duration `json:"verification_code_ttl"`
	APIKeyTTL           timex.Duration `json:"api_key_ttl"`

	SMTPHost     string `json:"smtp_host"`
	SMTPPort     string `json:"smtp_port"`
	SMTPFrom     string `json:"smtp_from"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"smtp_password"`

	GeocodingBaseURL string `json:"geocoding_base_url"`
	ForecastBaseURL  string `json:"forecast_base_url"`

	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`
}

// parseJson overlays configuration from a JSON file onto cfg. The file path
// comes from the -c/-config flags; when absent, nothing is loaded. Unset
// fields in the file leave the current values untouched. An unreadable or
// invalid file panics: a config file that was explicitly pointed at must not
// be silently ignored.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := &JsonConfig{}
	if err := json.Unmarshal(data, jc); err != nil {
		panic(err)
	}

	setString(&cfg.EndpointAddrGRPC, jc.EndpointAddrGRPC)
	setString(&cfg.AWSRegion, jc.AWSRegion)
	setString(&cfg.AWSEndpointURL, jc.AWSEndpointURL)
	setString(&cfg.AWSAccessKeyID, jc.AWSAccessKeyID)
	setString(&cfg.AWSSecretAccessKey, jc.AWSSecretAccessKey)
	setString(&cfg.UsersTable, jc.UsersTable)
	setString(&cfg.APIKeysTable, jc.APIKeysTable)
	setString(&cfg.VerificationsTable, jc.VerificationsTable)
	setString(&cfg.WeatherTable, jc.WeatherTable)
	setString(&cfg.APIKeyHeader, jc.APIKeyHeader)
	setString(&cfg.UserEmailHeader, jc.UserEmailHeader)
	setString(&cfg.PublicMethods, jc.PublicMethods)
	setString(&cfg.APIKeyMethods, jc.APIKeyMethods)
	setString(&cfg.SMTPHost, jc.SMTPHost)
	setString(&cfg.SMTPPort, jc.SMTPPort)
	setString(&cfg.SMTPFrom, jc.SMTPFrom)
	setString(&cfg.SMTPUsername, jc.SMTPUsername)
	setString(&cfg.SMTPPassword, jc.SMTPPassword)
	setString(&cfg.GeocodingBaseURL, jc.GeocodingBaseURL)
	setString(&cfg.ForecastBaseURL, jc.ForecastBaseURL)

	if jc.VerificationCodeTTL != 0 {
		cfg.VerificationCodeTTL = time.Duration(jc.VerificationCodeTTL)
	}
	if jc.APIKeyTTL != 0 {
		cfg.APIKeyTTL = time.Duration(jc.APIKeyTTL)
	}
	if jc.RateLimitRPS != 0 {
		cfg.RateLimitRPS = jc.RateLimitRPS
	}
	if jc.RateLimitBurst != 0 {
		cfg.RateLimitBurst = jc.RateLimitBurst
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
