package rating

import "fmt"

const (
	sdkVersionMajor = "1"
	sdkVersionMinor = "0"
	sdkVersionPatch = "0"
)

// Version returns the semantic version of the SDK.
func Version() string {
	return fmt.Sprintf("%s.%s.%s", sdkVersionMajor, sdkVersionMinor, sdkVersionPatch)
}
