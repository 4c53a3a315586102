package utils

import "strings"

// NormalizePhone keeps digits only so the same number joins across
// Visits, Owners and Buyers regardless of formatting.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeKey is the canonical form for name lookups.
func NormalizeKey(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
