// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package sec

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword digests a plain-text password as lowercase SHA-256 hex.
//
// The subscriber table was imported from the legacy publishing system, which
// stores credentials as SHA-256 hex digests; new writes must stay compatible
// so both systems can authenticate the same rows.
func HashPassword(plainTextPassword string) string {
	digest := sha256.Sum256([]byte(plainTextPassword))
	return hex.EncodeToString(digest[:])
}

// CheckPasswordHash compares a plain-text password with a stored hex digest
// in constant time.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	computed := HashPassword(plainTextPassword)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(existingHash)) == 1
}
