// Package phone is the single source of truth for phone number handling.
// Numbers are normalized to E.164 with the Kenyan country code before they
// are stored or handed to an SMS gateway.
package phone

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// Kenyan mobile numbers: +2547XXXXXXXX or +2541XXXXXXXX.
var kenyanMobile = regexp.MustCompile(`^\+254[17]\d{8}$`)

// Normalize converts a raw phone input to +254 E.164 form. Separators are
// stripped first; a leading 0 is replaced by the country code, a bare 254
// gains the plus, and anything else is assumed local and prefixed.
// Empty input stays empty.
func Normalize(raw string) string {
	digits := stripNonDigits(raw)
	if digits == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(digits, "0"):
		return "+254" + digits[1:]
	case strings.HasPrefix(digits, "254"):
		return "+" + digits
	default:
		return "+254" + digits
	}
}

// Validate normalizes the input and checks it is a plausible Kenyan mobile
// number.
func Validate(raw string) (string, error) {
	normalized := Normalize(raw)
	if !kenyanMobile.MatchString(normalized) {
		return "", ErrInvalidPhone
	}
	return normalized, nil
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
