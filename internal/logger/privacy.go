package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

var hashSalt string

func init() {
	// Load salt from environment or fall back to a default one.
	// In production, set LOG_HASH_SALT.
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// HashEmail creates a privacy-preserving hash of an account email.
// This allows correlating a user's actions in logs without exposing the address.
func HashEmail(email string) string {
	data := fmt.Sprintf("%s:%s", strings.ToLower(email), hashSalt)
	hash := sha256.Sum256([]byte(data))
	// First 8 characters for readability
	return hex.EncodeToString(hash[:])[:8]
}

// SanitizeDescription redacts free-text descriptions while preserving length
// information for debugging.
func SanitizeDescription(desc string) string {
	if desc == "" {
		return "<empty>"
	}

	words := strings.Fields(desc)
	return fmt.Sprintf("<redacted: %d words, %d chars>", len(words), len(desc))
}

// SanitizeText is a general-purpose sanitizer for any user-provided text.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}

	if len(text) <= 10 {
		return fmt.Sprintf("<%d chars>", len(text))
	}

	return fmt.Sprintf("%s...<%d chars>", text[:3], len(text))
}
