package rating

import "time"

const (
	// DefaultEndpoint is used when no endpoint override is configured.
	DefaultEndpoint = "https://api.invokation.gg"

	apiVersionPrefix = "/v1"

	DefaultConnectTimeout   = 5 * time.Second
	DefaultReadWriteTimeout = 10 * time.Second
)

// Environment variables honored by LoadConfigFromEnvironment.
const (
	EnvVarEndpoint    = "INVKN_ENDPOINT"
	EnvVarEnvironment = "INVKN_ENVIRONMENT"
)
