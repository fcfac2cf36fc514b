// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package plate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangphan/fleetra/pkg/plate"
)

/*
TestNormalize checks plate canonicalization across casing, separators, and
accented input.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already_canonical", "AB1234C", "AB1234C"},
		{"lowercase", "ab1234c", "AB1234C"},
		{"spaces_and_dashes", "ab-1234 c", "AB1234C"},
		{"mixed_separators", " AB_12.34-C ", "AB1234C"},
		{"accented_letters", "éÅ-123", "EA123"},
		{"digits_only", "00123", "00123"},
		{"empty", "", ""},
		{"separators_only", "--  __", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, plate.Normalize(tt.input))
		})
	}
}

/*
TestNormalize_CollapsesVariants verifies visually-equal plates normalize to
the same canonical key.
*/
func TestNormalize_CollapsesVariants(t *testing.T) {
	variants := []string{"AB 1234C", "ab-1234-c", "Ab1234c", "AB1234C"}

	canonical := plate.Normalize(variants[0])
	for _, variant := range variants[1:] {
		assert.Equal(t, canonical, plate.Normalize(variant))
	}
}
