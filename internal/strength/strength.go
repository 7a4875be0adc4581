// Package strength scores passwords by character class coverage.
package strength

import (
	"strings"
	"unicode/utf16"
)

// MinAcceptable is the lowest score sign-up accepts.
const MinAcceptable = 3

const (
	minLength = 8
	symbols   = `!@#$%^&*(),.?":{}|<>`
)

// Score returns one point each for: a length of at least 8, an ASCII
// lowercase letter, an ASCII uppercase letter, a digit, and a symbol from
// the fixed set !@#$%^&*(),.?":{}|<>. The result is in [0,5].
//
// Length is counted in UTF-16 code units, the way browsers measure string
// length, so a character outside the BMP (an emoji) counts as two.
func Score(password string) int {
	var lower, upper, digit, symbol bool
	n := 0

	for _, r := range password {
		n += utf16.RuneLen(r)
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(symbols, r):
			symbol = true
		}
	}

	score := 0
	for _, ok := range []bool{n >= minLength, lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}
	return score
}

// Acceptable reports whether password is strong enough to sign up with.
func Acceptable(password string) bool {
	return Score(password) >= MinAcceptable
}

type Level int

const (
	Weak Level = iota
	Medium
	Strong
)

// Classify maps a score to the indicator shown next to the password field.
func Classify(score int) Level {
	switch {
	case score < 2:
		return Weak
	case score < 4:
		return Medium
	default:
		return Strong
	}
}

func (l Level) String() string {
	switch l {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}
