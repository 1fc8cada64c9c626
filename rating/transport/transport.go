package transport

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"
)

var (
	DefaultConnectTimeout   = 5 * time.Second
	DefaultReadWriteTimeout = 10 * time.Second

	DefaultIdleConnectionTimeout = 50 * time.Second
	DefaultKeepAliveTimeout      = 30 * time.Second
	DefaultMaxConnections        = 100
)

type Config struct {
	ConnectTimeout *time.Duration

	ReadWriteTimeout *time.Duration

	IdleConnectionTimeout *time.Duration

	KeepAliveTimeout *time.Duration

	MaxConnections *int

	InsecureSkipVerify *bool

	EnabledRedirect *bool

	ProxyHost *string

	ProxyFromEnvironment *bool
}

func newTransportConfig(fns ...func(*Config)) *Config {
	cfg := &Config{
		ConnectTimeout:        &DefaultConnectTimeout,
		ReadWriteTimeout:      &DefaultReadWriteTimeout,
		IdleConnectionTimeout: &DefaultIdleConnectionTimeout,
		KeepAliveTimeout:      &DefaultKeepAliveTimeout,
		MaxConnections:        &DefaultMaxConnections,
	}
	for _, fn := range fns {
		fn(cfg)
	}
	return cfg
}

func InsecureSkipVerify(enabled bool) func(*Config) {
	return func(cfg *Config) {
		cfg.InsecureSkipVerify = &enabled
	}
}

func MaxConnections(value int) func(*Config) {
	return func(cfg *Config) {
		cfg.MaxConnections = &value
	}
}

func ConnectTimeout(value time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.ConnectTimeout = &value
	}
}

func ReadWriteTimeout(value time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.ReadWriteTimeout = &value
	}
}

func ProxyHost(value string) func(*Config) {
	return func(cfg *Config) {
		cfg.ProxyHost = &value
	}
}

func ProxyFromEnvironment(enabled bool) func(*Config) {
	return func(cfg *Config) {
		cfg.ProxyFromEnvironment = &enabled
	}
}

// NewHttpClient builds an http.Client on a pooled transport with the
// configured dial, read/write and idle-connection timeouts. The client and
// its connection pool are shared across all logical operations.
func NewHttpClient(fns ...func(*Config)) *http.Client {
	cfg := newTransportConfig(fns...)

	dialer := newDialer(cfg)

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		MaxIdleConns:          *cfg.MaxConnections,
		MaxIdleConnsPerHost:   *cfg.MaxConnections,
		IdleConnTimeout:       *cfg.IdleConnectionTimeout,
		TLSHandshakeTimeout:   *cfg.ConnectTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if cfg.InsecureSkipVerify != nil && *cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	if cfg.ProxyHost != nil {
		if proxyURL, err := url.Parse(*cfg.ProxyHost); err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	} else if cfg.ProxyFromEnvironment != nil && *cfg.ProxyFromEnvironment {
		transport.Proxy = http.ProxyFromEnvironment
	}

	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
