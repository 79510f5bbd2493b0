package validators

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MinPasswordLength = 6
)

var nameRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)

// IsValidName accepts 2 to 50 letters and spaces, Spanish accents included.
func IsValidName(name string) bool {
	n := strings.TrimSpace(name)
	l := len([]rune(n))
	return l >= MinNameLength && l <= MaxNameLength && nameRe.MatchString(n)
}

// IsStrongPassword requires at least six characters with a lower case
// letter, an upper case letter and a digit.
func IsStrongPassword(pw string) bool {
	if len([]rune(pw)) < MinPasswordLength {
		return false
	}

	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
