package utils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// GenerateToken returns a 32-byte random opaque bearer token. Nothing stores or
// verifies it server-side; clients hold it as-is.
func GenerateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate token failed")
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
