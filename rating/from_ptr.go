package rating

import "time"

// ToBool returns the bool value if the pointer is not nil.
// Returns a bool zero value if the pointer is nil.
func ToBool(p *bool) (v bool) {
	if p == nil {
		return v
	}

	return *p
}

// ToString returns the string value if the pointer is not nil.
// Returns a string zero value if the pointer is nil.
func ToString(p *string) (v string) {
	if p == nil {
		return v
	}

	return *p
}

// ToInt returns the int value if the pointer is not nil.
// Returns an int zero value if the pointer is nil.
func ToInt(p *int) (v int) {
	if p == nil {
		return v
	}

	return *p
}

// ToInt32 returns the int32 value if the pointer is not nil.
// Returns an int32 zero value if the pointer is nil.
func ToInt32(p *int32) (v int32) {
	if p == nil {
		return v
	}

	return *p
}

// ToFloat64 returns the float64 value if the pointer is not nil.
// Returns a float64 zero value if the pointer is nil.
func ToFloat64(p *float64) (v float64) {
	if p == nil {
		return v
	}

	return *p
}

// ToTime returns the time.Time value if the pointer is not nil.
// Returns a time.Time zero value if the pointer is nil.
func ToTime(p *time.Time) (v time.Time) {
	if p == nil {
		return v
	}

	return *p
}

// ToDuration returns the time.Duration value if the pointer is not nil.
// Returns a time.Duration zero value if the pointer is nil.
func ToDuration(p *time.Duration) (v time.Duration) {
	if p == nil {
		return v
	}

	return *p
}
