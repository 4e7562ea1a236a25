// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateSecureToken returns a cryptographically random hex string of
// byteLength random bytes. Used for refresh tokens.
func GenerateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)

	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec_token_generation_failed: %w", err)
	}

	return hex.EncodeToString(buffer), nil
}

// HashToken digests an opaque token for storage. Sessions are keyed by the
// hash so a leaked session store does not leak usable tokens.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
