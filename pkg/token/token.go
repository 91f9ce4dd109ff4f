package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Length is the number of random bytes behind each token. 32 bytes gives
// 256 bits of entropy, comfortably above the 128-bit minimum needed to make
// guessing infeasible.
const Length = 32

// New mints a URL-safe, single-use review-request token. The raw token is
// returned exactly once at issuance and is never re-revealed by any endpoint.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
