// Package codec converts decimal digit strings to coefficient sequences and
// back. Encoded sequences are least-significant-digit first, so index i holds
// the coefficient of 10^i. Decoding rounds each coefficient to the nearest
// integer, propagates carries upward and trims leading zeros.
package codec

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Base is the radix of the digit strings handled by this package.
const Base = 10

// ErrInvalidInput is the sentinel wrapped by every encoding failure.
var ErrInvalidInput = errors.New("invalid input")

// InvalidDigitError reports the first offending character of an operand.
type InvalidDigitError struct {
	// Position is the byte offset in the original, most-significant-first string.
	Position int
	// Char is the offending byte.
	Char byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d", e.Char, e.Position)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold.
func (e *InvalidDigitError) Unwrap() error { return ErrInvalidInput }

// Validate checks that digits is a non-empty string of ASCII decimal digits.
func Validate(digits string) error {
	if digits == "" {
		return fmt.Errorf("%w: empty operand", ErrInvalidInput)
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return &InvalidDigitError{Position: i, Char: c}
		}
	}
	return nil
}

// Encode maps digits to its coefficient sequence, least significant first.
// The sequence has exactly len(digits) elements.
func Encode(digits string) ([]complex128, error) {
	return EncodePadded(digits, len(digits))
}

// EncodePadded is Encode followed by zero padding to n elements. n must be
// at least len(digits).
func EncodePadded(digits string, n int) ([]complex128, error) {
	if err := Validate(digits); err != nil {
		return nil, err
	}
	if n < len(digits) {
		return nil, fmt.Errorf("%w: padded length %d is shorter than operand length %d", ErrInvalidInput, n, len(digits))
	}
	v := make([]complex128, n)
	last := len(digits) - 1
	for i := 0; i <= last; i++ {
		v[i] = complex(float64(digits[last-i]-'0'), 0)
	}
	return v, nil
}

// Stats describes the rounding performed by a decode.
type Stats struct {
	// MaxRoundingError is the largest |x - round(x)| over all coefficients.
	MaxRoundingError float64
	// MaxErrorPosition is the coefficient index where it occurred.
	MaxErrorPosition int
	// CarryDigits is the number of digits produced from the carry left over
	// after the last coefficient.
	CarryDigits int
}

// Decode converts the real parts of coeffs into a digit string.
func Decode(coeffs []complex128) string {
	s, _ := DecodeWithStats(coeffs)
	return s
}

// DecodeReal converts real coefficients into a digit string.
func DecodeReal(coeffs []float64) string {
	c := make([]complex128, len(coeffs))
	for i, x := range coeffs {
		c[i] = complex(x, 0)
	}
	return Decode(c)
}

// DecodeWithStats converts the real parts of coeffs into a digit string and
// reports the rounding it had to apply.
//
// Position i yields digit (round(coeffs[i]) + carry) mod 10 and passes the
// quotient on to i+1. A carry remaining after the last position is emitted as
// further digits rather than dropped. An empty or all-zero input decodes
// to "0".
func DecodeWithStats(coeffs []complex128) (string, Stats) {
	var st Stats
	out := make([]byte, 0, len(coeffs)+4)

	var carry int64
	for i, c := range coeffs {
		x := real(c)
		r := math.Round(x)
		if d := math.Abs(x - r); d > st.MaxRoundingError {
			st.MaxRoundingError = d
			st.MaxErrorPosition = i
		}
		value := int64(r) + carry
		digit := value % Base
		carry = value / Base
		if digit < 0 {
			// Negative noise around a true zero: borrow from the next position.
			digit += Base
			carry--
		}
		out = append(out, byte('0'+digit))
	}
	for carry > 0 {
		out = append(out, byte('0'+carry%Base))
		carry /= Base
		st.CarryDigits++
	}

	last := len(out) - 1
	for last > 0 && out[last] == '0' {
		last--
	}
	if last < 0 {
		return "0", st
	}
	out = out[:last+1]
	reverse(out)
	return string(out), st
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// TrimLeadingZeros removes leading zeros, keeping a single "0" for zero.
func TrimLeadingZeros(digits string) string {
	t := strings.TrimLeft(digits, "0")
	if t == "" {
		return "0"
	}
	return t
}
