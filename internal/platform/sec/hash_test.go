// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuukmedia/polarnews/internal/platform/sec"
)

func TestHashPassword_LegacyCompatibility(t *testing.T) {
	// Known digest produced by the legacy publishing system.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		sec.HashPassword("password"),
	)
}

func TestCheckPasswordHash(t *testing.T) {
	hash := sec.HashPassword("vinterhavn77")

	assert.True(t, sec.CheckPasswordHash("vinterhavn77", hash))
	assert.False(t, sec.CheckPasswordHash("Vinterhavn77", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, first, 64) // hex doubles the byte length

	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, sec.HashToken("abc"), sec.HashToken("abc"))
	assert.NotEqual(t, sec.HashToken("abc"), sec.HashToken("abd"))
	assert.Len(t, sec.HashToken("abc"), 64)
}
