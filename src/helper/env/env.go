package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Lookup returns the trimmed value of name and whether it was set to
// something other than blanks.
func Lookup(name string) (string, bool) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// GetString extracts a String value from the given environment variable
func GetString(name string, defaultValue ...string) string {
	value, ok := Lookup(name)
	if !ok && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetInt extracts an Int value. A malformed value falls back to the default.
func GetInt(name string, defaultValue ...int) int {
	value, ok, err := ParseInt(name)
	if (!ok || err != nil) && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// ParseInt reports malformed values instead of hiding them behind a default.
func ParseInt(name string) (int, bool, error) {
	raw, ok := Lookup(name)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("%s must contain an int value, got %q", name, raw)
	}
	return value, true, nil
}

func ParseInt64(name string) (int64, bool, error) {
	raw, ok := Lookup(name)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%s must contain an int64 value, got %q", name, raw)
	}
	return value, true, nil
}

// GetBool extracts a Bool value from the given environment variable
func GetBool(name string, defaultValue ...bool) bool {
	value, ok, err := ParseBool(name)
	if (!ok || err != nil) && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func ParseBool(name string) (bool, bool, error) {
	raw, ok := Lookup(name)
	if !ok {
		return false, false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("%s must contain a boolean value (true or false), got %q", name, raw)
	}
	return value, true, nil
}

// GetDuration accepts Go durations ("30s") or a bare number of seconds.
func GetDuration(name string, defaultValue ...time.Duration) time.Duration {
	raw, ok := Lookup(name)
	if ok {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(raw); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice splits a comma separated list, dropping empty items.
func GetStringSlice(name string, defaultValue ...string) []string {
	raw, ok := Lookup(name)
	if !ok {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// MustGetString panics if the environment variable is not present
func MustGetString(name string) string {
	value, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("%s can't be empty", name))
	}
	return value
}
