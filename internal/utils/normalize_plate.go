package utils

import "strings"

// NormalizePlate canonicalizes a license plate for the vehicle registry:
// surrounding whitespace, inner spaces and hyphens removed, uppercased.
// Fact records are never rewritten; only registry keys go through this.
func NormalizePlate(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ToUpper(normalized)
	return normalized
}
