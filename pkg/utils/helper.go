package utils

import (
	"strconv"
)

// ParseInt converts string to int. The default applies only when the
// value is absent or malformed; zero and negatives parse as given.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return result
}

// ParseInt64 converts string to int64, returning ok=false when malformed
func ParseInt64(value string) (int64, bool) {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return result, true
}
