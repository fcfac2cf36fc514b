// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

// Package pointer holds generic helpers for the optional fields the API
// models as pointers, like a driver's team or vehicle assignment.
package pointer

// To returns a pointer to v, e.g. pointer.To(teamID) for an optional field.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback dereferences p, returning fallback when p is nil.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
