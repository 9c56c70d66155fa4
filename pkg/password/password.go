// Package password generates one-shot random passwords for created users.
// The service returns a generated password exactly once and never re-exposes it.
package password

import (
	"crypto/rand"
	"encoding/base64"
)

// DefaultEntropy is the number of random bytes per generated password.
const DefaultEntropy = 6

// Generate returns a URL-safe random password with DefaultEntropy bytes of
// randomness.
func Generate() string {
	return GenerateN(DefaultEntropy)
}

// GenerateN returns a URL-safe random password built from n random bytes.
func GenerateN(n int) string {
	if n <= 0 {
		n = DefaultEntropy
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; nothing
		// sensible to return.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
