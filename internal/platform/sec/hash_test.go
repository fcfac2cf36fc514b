// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangphan/fleetra/internal/platform/sec"
)

/*
TestHashPassword verifies hashing and verification round-trip behavior.
*/
func TestHashPassword(t *testing.T) {
	password := "correct horse battery staple"

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	// Hash must never equal the plain text.
	assert.NotEqual(t, password, hash)

	assert.True(t, sec.CheckPasswordHash(password, hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
	assert.False(t, sec.CheckPasswordHash(password, "not-a-bcrypt-hash"))
}

/*
TestHashPassword_Salted verifies two hashes of the same input differ.
*/
func TestHashPassword_Salted(t *testing.T) {
	first, err := sec.HashPassword("password123")
	require.NoError(t, err)
	second, err := sec.HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
