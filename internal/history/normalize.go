package history

import "strings"

// CanonicalName squeezes whitespace and drops code tokens from a raw label.
// A code token consists only of ASCII upper-case letters, digits and
// underscores, e.g. "A01", "2", "SKU_7".
func CanonicalName(raw string) string {
	fields := strings.Fields(raw)
	kept := fields[:0]
	for _, f := range fields {
		if !isCodeToken(f) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

func isCodeToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return s != ""
}
