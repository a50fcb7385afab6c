package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/kest-labs/kest-admin/pkg/kest"
	"github.com/kest-labs/kest-admin/pkg/schema"
)

const (
	// EnvAPIURL overrides api.base_url.
	EnvAPIURL = "KEST_API_URL"

	// EnvAPIToken overrides api.auth_token.
	EnvAPIToken = "KEST_API_TOKEN"

	// EnvConfig names the config file when no -config flag is given.
	EnvConfig = "KEST_CONFIG"

	DefaultLogLevel = "info"
	DefaultOutput   = "json"
	DefaultBaseURL  = "http://localhost:8025"
	DefaultWebURL   = "http://localhost:3000"
)

// LogLevels accepted by log_level.
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "off"}

// Outputs accepted by output.
var Outputs = []string{"json", "yaml"}

// Config is the kest-admin configuration file.
type Config struct {
	// LogLevel is the level of the root logger.
	LogLevel string `hcl:"log_level,optional" json:"log_level"`

	// WebURL is the root of the Kest web UI, used by the open command.
	WebURL string `hcl:"web_url,optional" json:"web_url"`

	// Output is the default rendering of command results: json or yaml.
	Output string `hcl:"output,optional" json:"output"`

	// API configures the backend client.
	API *kest.Config `hcl:"api,block" json:"api"`

	// Literals overrides entries of the example synthesizer's literal table.
	Literals *schema.Literals `hcl:"literals,block" json:"literals"`
}

// Load reads the HCL file at path, applies defaults and environment
// overrides, and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.WebURL == "" {
		c.WebURL = DefaultWebURL
	}
	if c.API == nil {
		c.API = &kest.Config{}
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.API.AuthToken = v
	}
}

// Validate checks the file-level settings. The API token is checked later,
// when a command actually needs the client.
func (c *Config) Validate() error {
	var result *multierror.Error

	c.LogLevel = strings.ToLower(c.LogLevel)
	c.Output = strings.ToLower(c.Output)
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(toInterfaces(LogLevels)...)),
		validation.Field(&c.Output, validation.In(toInterfaces(Outputs)...)),
	)
	result = multierror.Append(result, err)

	if c.API != nil {
		if err := c.API.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("api: %w", err))
		}
	}

	if c.Literals != nil {
		if err := c.Synthesizer().Literals.Validate(); err != nil {
			result = multierror.Append(result, fmt.Errorf("literals: %w", err))
		}
	}

	return result.ErrorOrNil()
}

// ClientConfig returns a copy of the api block for kest.NewClient.
func (c *Config) ClientConfig() *kest.Config {
	if c.API == nil {
		return &kest.Config{BaseURL: DefaultBaseURL}
	}
	api := *c.API
	return &api
}

// Synthesizer returns an example synthesizer using the configured literal
// overrides on top of the defaults.
func (c *Config) Synthesizer() *schema.Synthesizer {
	lit := schema.DefaultLiterals().Merge(c.Literals)
	return &schema.Synthesizer{Literals: &lit}
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
