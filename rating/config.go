package rating

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/invokation-games/rating-sdk-go/rating/credentials"
	"github.com/invokation-games/rating-sdk-go/rating/retry"
)

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

type Config struct {
	// The environment the model ids refer to. Defaults to production.
	Environment EnvironmentType

	// Overrides the service endpoint. Defaults to DefaultEndpoint.
	Endpoint *string

	// RetryMaxAttempts specifies the maximum number attempts an API client
	// will call an operation that fails with a retryable error.
	RetryMaxAttempts *int

	// Retryer guides how HTTP requests should be retried in case of
	// recoverable failures.
	Retryer retry.Retryer

	// The HTTP client to invoke API calls with. Defaults to the SDK's pooled
	// transport if nil.
	HttpClient HTTPClient

	// The credentials provider that supplies the API key.
	CredentialsProvider credentials.CredentialsProvider

	// Connect timeout
	ConnectTimeout *time.Duration

	// read & write timeout
	ReadWriteTimeout *time.Duration

	// Skip server certificate verification
	InsecureSkipVerify *bool

	// Flag of using proxy host.
	ProxyHost *string

	// Read the proxy setting from the environment variables.
	ProxyFromEnvironment *bool

	// Overrides the User-Agent header.
	UserAgent *string

	// Logger receives the per-retry event. Defaults to a discard logger.
	Logger *slog.Logger
}

func NewConfig() *Config {
	return &Config{}
}

func (c Config) Copy() Config {
	cp := c
	return cp
}

func LoadDefaultConfig() *Config {
	config := &Config{
		Environment: EnvironmentProduction,
	}
	return config
}

// LoadConfigFromEnvironment builds a config from INVKN_ENDPOINT,
// INVKN_ENVIRONMENT and INVKN_API_KEY.
func LoadConfigFromEnvironment() *Config {
	config := LoadDefaultConfig().
		WithCredentialsProvider(credentials.NewEnvironmentVariableCredentialsProvider())

	if endpoint := os.Getenv(EnvVarEndpoint); endpoint != "" {
		config.WithEndpoint(endpoint)
	}
	if env := os.Getenv(EnvVarEnvironment); env != "" {
		config.WithEnvironment(EnvironmentType(env))
	}

	return config
}

func (c *Config) WithEnvironment(env EnvironmentType) *Config {
	c.Environment = env
	return c
}

func (c *Config) WithEndpoint(endpoint string) *Config {
	c.Endpoint = Ptr(endpoint)
	return c
}

func (c *Config) WithRetryMaxAttempts(value int) *Config {
	c.RetryMaxAttempts = Ptr(value)
	return c
}

func (c *Config) WithRetryer(retryer retry.Retryer) *Config {
	c.Retryer = retryer
	return c
}

func (c *Config) WithHttpClient(client *http.Client) *Config {
	c.HttpClient = client
	return c
}

func (c *Config) WithCredentialsProvider(provider credentials.CredentialsProvider) *Config {
	c.CredentialsProvider = provider
	return c
}

func (c *Config) WithConnectTimeout(value time.Duration) *Config {
	c.ConnectTimeout = Ptr(value)
	return c
}

func (c *Config) WithReadWriteTimeout(value time.Duration) *Config {
	c.ReadWriteTimeout = Ptr(value)
	return c
}

func (c *Config) WithInsecureSkipVerify(value bool) *Config {
	c.InsecureSkipVerify = Ptr(value)
	return c
}

func (c *Config) WithProxyHost(value string) *Config {
	c.ProxyHost = Ptr(value)
	return c
}

func (c *Config) WithProxyFromEnvironment(value bool) *Config {
	c.ProxyFromEnvironment = Ptr(value)
	return c
}

func (c *Config) WithUserAgent(value string) *Config {
	c.UserAgent = Ptr(value)
	return c
}

func (c *Config) WithLogger(logger *slog.Logger) *Config {
	c.Logger = logger
	return c
}
