package utils

import "strings"

// apiKeyMaskFiller replaces everything after the display prefix of an API key.
// Fixed length so masked keys reveal nothing about the raw key's length.
const apiKeyMaskFiller = "************"

// MaskAPIKey renders a display-safe form of an API key from its stored prefix.
// Example: "ak_1a2b3c4d5" -> "ak_1a2b3c4d5************"
func MaskAPIKey(prefix string) string {
	return prefix + apiKeyMaskFiller
}

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 1 {
		return local + "***@" + parts[1]
	}
	return string(local[0]) + "***@" + parts[1]
}
