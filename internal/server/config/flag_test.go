package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides provided fields only", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", ":9999", "-k", "/user.UserService/CreateApiKey"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddrGRPC)
		assert.Equal(t, "/user.UserService/CreateApiKey", cfg.APIKeyMethods)
		assert.Equal(t, "us-east-1", cfg.AWSRegion)
	})

	t.Run("foreign flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "somefile.json", "-unknown", "x"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, ":9092", cfg.EndpointAddrGRPC)
	})
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("VERIFICATION_CODE_TTL", "5m")
	t.Setenv("SMTP_HOST", "mail.internal")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "mail.internal", cfg.SMTPHost)
	assert.Equal(t, "5m0s", cfg.VerificationCodeTTL.String())
	assert.Equal(t, 7, cfg.RateLimitBurst)
	// unparsable values keep the default
	assert.Equal(t, float64(20), cfg.RateLimitRPS)
}
