package models

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// idPattern matches the opaque 24-hex object IDs used across the system.
var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// NewID returns a new opaque 24-hex object ID (12 random bytes, hex-encoded).
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand.Read never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}

// IsValidID reports whether s is a well-formed 24-hex object ID.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}
