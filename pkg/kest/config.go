package kest

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Config is the api block of the kest-admin config file:
//
//	api {
//	  base_url    = "https://kest.example.com"
//	  auth_token  = "..."
//	  timeout     = "30s"
//	  max_retries = 0       # disables retries
//	  retry_delay = "500ms"
//	  tls_verify  = false
//	}
//
// Unset fields take the values of DefaultConfig when the client is built.
type Config struct {
	// BaseURL is the root of the Kest backend, without the /v1 prefix.
	BaseURL string `hcl:"base_url,optional" json:"base_url"`

	// AuthToken is sent as a Bearer token on every request.
	AuthToken string `hcl:"auth_token,optional" json:"-"`

	// TLSVerify controls TLS certificate verification. Set to false only
	// for local backends with self-signed certs.
	TLSVerify *bool `hcl:"tls_verify,optional" json:"tls_verify"`

	// Timeout bounds a single HTTP request, as a duration string.
	Timeout string `hcl:"timeout,optional" json:"timeout"`

	// MaxRetries bounds the retries of requests that fail with a transport
	// error or a 5xx. Zero disables retries.
	MaxRetries *int `hcl:"max_retries,optional" json:"max_retries"`

	// RetryDelay is the first wait between retries; later waits grow
	// exponentially.
	RetryDelay string `hcl:"retry_delay,optional" json:"retry_delay"`
}

// DefaultConfig returns the values used for unset fields.
func DefaultConfig() *Config {
	tlsVerify := true
	maxRetries := DefaultMaxRetries
	return &Config{
		TLSVerify:  &tlsVerify,
		Timeout:    DefaultTimeout.String(),
		MaxRetries: &maxRetries,
		RetryDelay: DefaultRetryDelay.String(),
	}
}

// Validate checks the configured values. Unset optional fields are valid.
// The auth token is checked by NewClient.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Timeout, validation.By(duration(false))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.By(duration(true))),
	)
}

// settings are the resolved values a Client runs with.
type settings struct {
	baseURL    string
	authToken  string
	tlsVerify  bool
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// resolve validates c and fills unset fields from DefaultConfig. c itself is
// not modified.
func (c *Config) resolve() (*settings, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.AuthToken == "" {
		return nil, errors.New("auth_token is required")
	}

	d := DefaultConfig()
	s := &settings{
		baseURL:    strings.TrimRight(c.BaseURL, "/"),
		authToken:  c.AuthToken,
		tlsVerify:  *d.TLSVerify,
		timeout:    DefaultTimeout,
		maxRetries: *d.MaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	if c.TLSVerify != nil {
		s.tlsVerify = *c.TLSVerify
	}
	if c.MaxRetries != nil {
		s.maxRetries = *c.MaxRetries
	}
	// Both parse: Validate accepted them.
	if c.Timeout != "" {
		s.timeout, _ = time.ParseDuration(c.Timeout)
	}
	if c.RetryDelay != "" {
		s.retryDelay, _ = time.ParseDuration(c.RetryDelay)
	}
	return s, nil
}

func (s *settings) httpClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	if !s.tlsVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   s.timeout,
		Transport: transport,
	}
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("must be a valid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got: %q", u.Scheme)
	}
	return nil
}

func duration(allowZero bool) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("must be a duration such as \"30s\", got: %q", s)
		}
		if d < 0 || (d == 0 && !allowZero) {
			return fmt.Errorf("must be positive, got: %s", s)
		}
		return nil
	}
}
