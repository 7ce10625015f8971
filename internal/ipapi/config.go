package ipapi

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate checks Config structs against their field tags.
var validate = validator.New()

// Config holds the published parameters of the ip-api.com service. The
// service may revise quotas, endpoints, or the batch cap over time, so every
// parameter can be overridden, typically from a YAML file via ParseConfigFile.
// Durations are expressed in seconds to match the service documentation.
type Config struct {
	// BaseURL is the root of the service. Keyed requests upgrade the scheme
	// to https before the key is attached.
	BaseURL string `default:"http://ip-api.com" validate:"required,url" yaml:"base_url"`

	// JSONEndpoint serves single-query lookups via GET.
	JSONEndpoint string `default:"json" validate:"required" yaml:"json_endpoint"`

	// BatchEndpoint serves batched lookups via POST of a JSON array.
	BatchEndpoint string `default:"batch" validate:"required" yaml:"batch_endpoint"`

	// BatchSize is the maximum number of queries per batch request. The
	// service rejects larger batches with HTTP 422.
	BatchSize int `default:"100" validate:"gte=1" yaml:"batch_size"`

	// JSONRateLimit and BatchRateLimit are the keyless per-minute quotas for
	// the two endpoint classes.
	JSONRateLimit  int `default:"45" validate:"gte=1" yaml:"json_rate_limit"`
	BatchRateLimit int `default:"15" validate:"gte=1" yaml:"batch_rate_limit"`

	// RetryAttempts bounds the total number of exchanges attempted when the
	// transport fails; RetryDelaySeconds separates consecutive attempts.
	RetryAttempts     int     `default:"3" validate:"gte=1" yaml:"retry_attempts"`
	RetryDelaySeconds float64 `default:"1.0" validate:"gte=0" yaml:"retry_delay"`

	// ResetHoldSeconds is the safety margin added to the server-reported
	// window reset before a throttled request is released.
	ResetHoldSeconds float64 `default:"3.0" validate:"gte=0" yaml:"reset_hold"`
}

// DefaultConfig returns the documented service parameters.
func DefaultConfig() Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(fmt.Sprintf("ipapi: default config tags are malformed: %v", err))
	}
	return c
}

// Validate fills unset fields with their defaults and checks the result.
func (c *Config) Validate() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("applying config defaults: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid service config: %w", err)
	}
	return nil
}

// ParseConfigFile reads a YAML override of the service parameters. Fields
// absent from the file keep their defaults.
func ParseConfigFile(filename string) (Config, error) {
	raw, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
