package rating

// The deployment environment a model lives in. Every model id exists
// independently per environment, and the environment is part of the request
// path.
type EnvironmentType string

// Enum values for EnvironmentType
const (
	// Live ratings. Submitted results update player skill for real.
	EnvironmentProduction EnvironmentType = "production"

	// Isolated playground. Same API surface, separate rating state.
	EnvironmentSandbox EnvironmentType = "sandbox"
)

// HTTP headers
const (
	HTTPHeaderAPIKey      string = "X-Api-Key"
	HTTPHeaderRequestID          = "X-Request-Id"
	HTTPHeaderContentType        = "Content-Type"
	HTTPHeaderUserAgent          = "User-Agent"
	HTTPHeaderDate               = "Date"
)

const (
	contentTypeJSON = "application/json"
)
