package order

import "strings"

// NormalizePhone strips the vendor's country-code prefix variants and
// returns the 10-digit local number. The vendor is inconsistent about
// prefixes ("+91…", "91…", bare), so all three shapes are accepted.
func NormalizePhone(raw string) (string, error) {
	p := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(p, "+91"):
		p = p[3:]
	case strings.HasPrefix(p, "91") && len(p) == 12:
		p = p[2:]
	}

	if len(p) != 10 || !isDigits(p) {
		return "", ErrInvalidPhone
	}
	return p, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
