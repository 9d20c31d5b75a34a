// Package card generates and validates synthetic payment card numbers.
package card

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const numberLength = 16

// randomBINs is the fixed pool used when the caller does not supply a prefix.
var randomBINs = []string{"457382", "536418", "491267", "549618", "426285", "378282"}

// Record is an immutable generated card.
type Record struct {
	Number string
	Month  string
	Year   string
	CVC    string
}

// String renders the record in the fixed NUMBER|MM|YY|CVC order.
func (r Record) String() string {
	return fmt.Sprintf("%s|%s|%s|%s", r.Number, r.Month, r.Year, r.CVC)
}

// Overrides carries optional caller-supplied expiry and CVC values. All-digit
// values are used verbatim without range validation; anything else falls back
// to a random default.
type Overrides struct {
	Month string
	Year  string
	CVC   string
}

// Validate reports whether s is an all-digit string passing the Luhn checksum.
// Non-digit input is invalid, never an error.
func Validate(s string) bool {
	if len(s) == 0 || !isDigits(s) {
		return false
	}

	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
		}
		sum += d/10 + d%10
		double = !double
	}

	return sum%10 == 0
}

// Generate builds a Luhn-valid 16-digit card from the given BIN prefix. The
// prefix is padded with random digits to 15 and the final digit is found by
// trying 0-9 in order; the checksum spans all ten residues so the search is
// bounded and always succeeds.
func Generate(bin string, o Overrides) (Record, error) {
	if bin == "" || !isDigits(bin) {
		return Record{}, errors.New("bin prefix must contain only digits")
	}
	if len(bin) >= numberLength {
		return Record{}, fmt.Errorf("bin prefix must be shorter than %d digits", numberLength)
	}

	digits := []byte(bin)
	for len(digits) < numberLength-1 {
		digits = append(digits, byte('0'+rand.IntN(10)))
	}
	digits = append(digits, '0')

	for c := byte('0'); c <= '9'; c++ {
		digits[numberLength-1] = c
		if Validate(string(digits)) {
			break
		}
	}

	return Record{
		Number: string(digits),
		Month:  digitsOr(o.Month, func() string { return fmt.Sprintf("%02d", 1+rand.IntN(12)) }),
		Year:   digitsOr(o.Year, func() string { return fmt.Sprintf("%02d", 25+rand.IntN(6)) }),
		CVC:    digitsOr(o.CVC, func() string { return fmt.Sprintf("%03d", 100+rand.IntN(900)) }),
	}, nil
}

// RandomBIN returns one of the built-in BIN prefixes.
func RandomBIN() string {
	return randomBINs[rand.IntN(len(randomBINs))]
}

func digitsOr(value string, fallback func() string) string {
	if value != "" && isDigits(value) {
		return value
	}
	return fallback()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
