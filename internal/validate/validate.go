// Package validate holds the pure format predicates for registration input.
//
// Each predicate takes a raw string and reports whether it satisfies the
// fixed contract. An empty string never satisfies any of them.
package validate

import (
	"regexp"
	"strings"
)

const (
	minUsernameLength = 2
	maxUsernameLength = 7
	minPasswordLength = 8

	// passwordSpecials is the accepted special-character set for passwords.
	passwordSpecials = `!@#$%^&*()_+-=[]{};:'"\|,.<>/?`
)

var (
	// usernameChars: alphanumeric and underscore only, not starting with
	// an underscore. A trailing underscore is allowed.
	usernameChars = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_]*$`)

	// cellNumber: the +27 country code followed by exactly nine digits.
	cellNumber = regexp.MustCompile(`^\+27[0-9]{9}$`)
)

// Username reports whether s is 2–7 characters of letters, digits and
// underscores, contains at least one underscore, and does not begin with one.
func Username(s string) bool {
	if len(s) < minUsernameLength || len(s) > maxUsernameLength {
		return false
	}
	if !strings.Contains(s, "_") {
		return false
	}
	return usernameChars.MatchString(s)
}

// Password reports whether s is at least 8 characters and contains an
// uppercase letter, a digit and one of the accepted special characters.
// RE2 has no lookahead, so the four conditions are checked in a single scan.
func Password(s string) bool {
	if len(s) < minPasswordLength {
		return false
	}
	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasDigit && hasSpecial
}

// CellNumber reports whether s is a South African cell number in
// international form: +27 followed by exactly nine digits.
func CellNumber(s string) bool {
	return cellNumber.MatchString(s)
}
