package shared

import "strings"

// Digits strips every non-digit rune from s. CNPJ and phone numbers are
// persisted digits-only regardless of how the client formatted them.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCNPJ reports whether s contains exactly 14 digits after stripping.
// This is a length check only; no verification-digit algorithm is applied.
func ValidCNPJ(s string) bool {
	return len(Digits(s)) == 14
}

// ValidPhone reports whether s contains 10 or 11 digits after stripping
// (Brazilian landline or mobile with area code).
func ValidPhone(s string) bool {
	n := len(Digits(s))
	return n == 10 || n == 11
}
