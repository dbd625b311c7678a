package advisor

import "strings"

// MaxFieldLength is the maximum allowed length for user-provided text
// interpolated into a prompt.
const MaxFieldLength = 200

// SanitizeForPrompt sanitizes user input to prevent prompt injection attacks.
// It removes or escapes characters that could break prompt structure,
// and truncates to the given maxLength.
func SanitizeForPrompt(input string, maxLength int) string {
	// Remove or escape quotes that could break prompt structure.
	input = strings.ReplaceAll(input, `"`, `'`)
	input = strings.ReplaceAll(input, "`", "'")

	// Remove null bytes and other control characters.
	input = strings.ReplaceAll(input, "\x00", "")

	// Normalize whitespace: splits on any whitespace (spaces, tabs, newlines)
	// and rejoins with single spaces.
	input = strings.Join(strings.Fields(input), " ")

	// Limit length to prevent prompt stuffing attacks.
	if len(input) > maxLength {
		input = strings.TrimSpace(input[:maxLength])
	}

	return input
}

func sanitizeField(input string) string {
	return SanitizeForPrompt(input, MaxFieldLength)
}
