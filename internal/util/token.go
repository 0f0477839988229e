package util

import (
	"crypto/rand"
	"encoding/base64"
)

const tokenBytes = 18

// NewToken returns a random URL-safe token of 24 characters.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
