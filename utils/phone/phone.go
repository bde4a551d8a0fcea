package phone

import "strings"

// CountryPrefix is the only dialing prefix the platform accepts.
const CountryPrefix = "+998"

const localDigits = 9

// Normalize canonicalizes a user-supplied phone number to "+998#########".
// Accepted inputs: a bare 9-digit local number, the 12-digit form with the
// 998 country code, or either of those with a leading plus. Spaces, dashes
// and parentheses are stripped first. Anything else is rejected.
func Normalize(input string) (string, bool) {
	var digits strings.Builder
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			// separators and the plus sign are ignored
		default:
			return "", false
		}
	}

	d := digits.String()
	switch len(d) {
	case localDigits:
		return CountryPrefix + d, true
	case localDigits + 3:
		if !strings.HasPrefix(d, "998") {
			return "", false
		}
		return "+" + d, true
	}
	return "", false
}
