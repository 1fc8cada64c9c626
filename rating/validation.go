package rating

import (
	"net/url"
	"strings"
)

func isValidEndpoint(endpoint *url.URL) bool {
	return (endpoint != nil)
}

func isValidModelId(modelId *string) bool {
	if modelId == nil {
		return false
	}
	return len(strings.TrimSpace(*modelId)) > 0
}

func isValidEnvironment(env EnvironmentType) bool {
	switch env {
	case EnvironmentProduction, EnvironmentSandbox:
		return true
	}
	return false
}

var supportedMethod = map[string]interface{}{
	"GET":    nil,
	"PUT":    nil,
	"POST":   nil,
	"DELETE": nil,
}

func isValidMethod(method string) bool {
	if _, ok := supportedMethod[method]; ok {
		return true
	}
	return false
}
