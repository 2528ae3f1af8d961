package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// GenerateSecureRandomString returns lengthInBytes of cryptographically
// secure randomness, hex encoded, so the result is twice that many
// characters.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", errors.New("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
