// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roman converts Roman numeral strings to integers.
//
// Input is first checked against the grammar of well-formed numerals
// (up to four M, then hundreds, tens and units with the standard
// subtractive pairs). Matching is case-insensitive and anchored to the
// whole string. Valid input is then summed left to right, subtracting a
// symbol when the symbol after it has a greater value.
//
// The symbol table and grammar are package-level and read-only, so all
// functions are safe for concurrent use.
package roman

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ErrInvalidNumeral is returned by Parse for input that is empty, holds
// characters outside the symbol table, or breaks the repetition and
// subtractive rules.
var ErrInvalidNumeral = errors.New("invalid roman numeral")

// symbols maps each upper-case numeral to its value.
var symbols = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

var grammar = regexp.MustCompile(`(?i)^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// Valid reports whether s is a well-formed Roman numeral. The empty
// string is not valid.
func Valid(s string) bool {
	return s != "" && grammar.MatchString(s)
}

// Value returns the value of a single numeral symbol, ignoring case.
func Value(r rune) (int, bool) {
	v, ok := symbols[unicode.ToUpper(r)]
	return v, ok
}

// Parse returns the integer value of s. Input that is not a well-formed
// numeral yields an error wrapping ErrInvalidNumeral.
func Parse(s string) (int, error) {
	if !Valid(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumeral, s)
	}

	digits := []rune(strings.ToUpper(s))
	sum := 0
	for i, r := range digits {
		num, ok := symbols[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q has unknown symbol %q", ErrInvalidNumeral, s, r)
		}
		if i+1 < len(digits) && symbols[digits[i+1]] > num {
			sum -= num
		} else {
			sum += num
		}
	}
	return sum, nil
}

// ConvertRomanToInt returns the value of s, or 0 when s is not a
// well-formed numeral. Callers that need to tell the two apart should
// use Parse.
func ConvertRomanToInt(s string) int {
	n, err := Parse(s)
	if err != nil {
		return 0
	}
	return n
}
