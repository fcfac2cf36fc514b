// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package convert wraps strconv with lenient conversions for query-string
// parsing, where a malformed value should fall back to a default rather
// than fail the request. When malformed input must be distinguished from a
// zero value, use strconv directly.
package convert

import (
	"strconv"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

// ToIntD converts a string to an int, returning the provided default if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	if s == "" {
		return false
	}
	v, _ := strconv.ParseBool(s)
	return v
}

// ToFloat64 converts a string to a float64, swallowing errors.
func ToFloat64(s string) float64 {
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
