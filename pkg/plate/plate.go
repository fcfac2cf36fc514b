// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package plate normalizes vehicle registration plates into a canonical form.
//
// # Usage
//
// Operators type plates with inconsistent spacing, casing, and separators
// ("ab-1234 c", "AB 1234C"). The canonical form is compared and stored so the
// per-owner uniqueness constraint actually catches duplicates.
package plate

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize converts an arbitrary plate string into its canonical form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to uppercase.
// 4. Drops every character that is not an ASCII letter or digit.
func Normalize(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Uppercase
	result = strings.ToUpper(result)

	// 3. Keep letters and digits only
	var builder strings.Builder
	builder.Grow(len(result))
	for _, r := range result {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
