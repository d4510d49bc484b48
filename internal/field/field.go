// Package field provides the fixed width hexadecimal field handling shared by all code types.
package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Logical field widths, expressed as their maximum value.
const (
	Byte   = 0xFF
	Short  = 0xFFFF
	Word   = 0xFFFFFFFF
	Mask   = 0xFFFF
	Offset = 0x0FFFFFFF // addresses encoded in the low 7 digits of the first word
)

// Digit counts used when rendering the different field widths.
const (
	ByteDigits  = 2
	ShortDigits = 4
	WordDigits  = 8
)

// TokenLength is the number of hex digits of a single word of a line pair.
const TokenLength = 8

// ErrInvalidToken is returned for tokens that are not exactly 8 hex digits.
var ErrInvalidToken = errors.New("invalid hex token")

// RangeError is returned when a field value does not fit its declared width.
type RangeError struct {
	Attribute string
	Low       uint64
	High      uint64
	Actual    uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s should be between %08X and %08X but was %08X",
		e.Attribute, e.Low, e.High, e.Actual)
}

// ValidateRange checks that value is within low and high inclusive.
func ValidateRange[T constraints.Unsigned](name string, value, low, high T) error {
	if value < low || value > high {
		return &RangeError{
			Attribute: name,
			Low:       uint64(low),
			High:      uint64(high),
			Actual:    uint64(value),
		}
	}
	return nil
}

// FormatHex returns the value as zero padded uppercase hex string of the given digit count.
func FormatHex(value uint64, digits int) string {
	return fmt.Sprintf("%0*X", digits, value)
}

// ParseHex parses an 8 digit hex token as unsigned 32 bit word.
// The token is accepted in any letter case.
func ParseHex(token string) (uint32, error) {
	if len(token) != TokenLength {
		return 0, fmt.Errorf("%w '%s': expected %d digits", ErrInvalidToken, token, TokenLength)
	}
	value, err := strconv.ParseUint(token, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w '%s': %w", ErrInvalidToken, token, err)
	}
	return uint32(value), nil
}

// Canonical returns the canonical uppercase form of a token.
func Canonical(token string) string {
	return strings.ToUpper(token)
}

// Value renders a numeric field as 0x prefixed hex value. If comments is set, the decimal
// value is appended, in C comment style if cStyle is set.
func Value(value uint64, digits int, comments, cStyle bool) string {
	s := "0x" + FormatHex(value, digits)
	if !comments {
		return s
	}
	if cStyle {
		return fmt.Sprintf("%s /* %d */", s, value)
	}
	return fmt.Sprintf("%s(%d)", s, value)
}
