package credentials

import (
	"context"
	"errors"
	"os"
)

// EnvVarAPIKey is the environment variable read by the environment provider.
const EnvVarAPIKey = "INVKN_API_KEY"

type Credentials struct {
	APIKey string
}

func (v Credentials) HasKey() bool {
	return len(v.APIKey) > 0
}

type CredentialsProvider interface {
	GetCredentials(ctx context.Context) (Credentials, error)
}

// CredentialsProviderFunc provides a helper wrapping a function value to
// satisfy the CredentialsProvider interface.
type CredentialsProviderFunc func(ctx context.Context) (Credentials, error)

func (fn CredentialsProviderFunc) GetCredentials(ctx context.Context) (Credentials, error) {
	return fn(ctx)
}

// AnonymousCredentialsProvider sends no API key. Requests will only succeed
// against endpoints that do not require authentication, such as local mocks.
type AnonymousCredentialsProvider struct{}

func NewAnonymousCredentialsProvider() CredentialsProvider {
	return &AnonymousCredentialsProvider{}
}

func (*AnonymousCredentialsProvider) GetCredentials(_ context.Context) (Credentials, error) {
	return Credentials{APIKey: ""}, nil
}

type StaticCredentialsProvider struct {
	credentials Credentials
}

func NewStaticCredentialsProvider(apiKey string) StaticCredentialsProvider {
	return StaticCredentialsProvider{
		credentials: Credentials{
			APIKey: apiKey,
		},
	}
}

func (s StaticCredentialsProvider) GetCredentials(_ context.Context) (Credentials, error) {
	if !s.credentials.HasKey() {
		return Credentials{}, errors.New("static credentials are empty")
	}
	return s.credentials, nil
}

// EnvironmentVariableCredentialsProvider reads the API key from INVKN_API_KEY.
type EnvironmentVariableCredentialsProvider struct{}

func NewEnvironmentVariableCredentialsProvider() CredentialsProvider {
	return &EnvironmentVariableCredentialsProvider{}
}

func (*EnvironmentVariableCredentialsProvider) GetCredentials(_ context.Context) (Credentials, error) {
	apiKey := os.Getenv(EnvVarAPIKey)
	if apiKey == "" {
		return Credentials{}, errors.New("access api key is empty or not set, requires " + EnvVarAPIKey)
	}
	return Credentials{APIKey: apiKey}, nil
}
