package utils

import "unicode"

// Password strength buckets returned by PasswordStrength.
const (
	PasswordWeak   = "weak"
	PasswordMedium = "medium"
	PasswordStrong = "strong"
)

// PasswordStrength scores a candidate password by length and character
// class coverage. It mirrors the signup form heuristic: length counts
// twice, each class (lower, upper, digit, symbol) counts once.
func PasswordStrength(password string) string {
	score := 0
	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}

	switch {
	case score >= 5:
		return PasswordStrong
	case score >= 3:
		return PasswordMedium
	default:
		return PasswordWeak
	}
}
