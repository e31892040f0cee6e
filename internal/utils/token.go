package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// syncTokenBytes is the entropy of a generated sync token. 32 bytes gives
// 256 bits, comfortably above the 128-bit floor the sync contract requires.
const syncTokenBytes = 32

// GenerateSyncToken returns a new opaque, cryptographically random sync
// token encoded as unpadded base64url.
func GenerateSyncToken() (string, error) {
	buf := make([]byte, syncTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating sync token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
