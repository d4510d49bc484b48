package field

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    uint32
		wantErr bool
	}{
		{name: "uppercase", token: "89ABCDEF", want: 0x89ABCDEF},
		{name: "lowercase", token: "89abcdef", want: 0x89ABCDEF},
		{name: "zero", token: "00000000", want: 0},
		{name: "too short", token: "1234567", wantErr: true},
		{name: "too long", token: "123456789", wantErr: true},
		{name: "invalid digit", token: "1234567G", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.token)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidToken))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "0000ABCD", FormatHex(0xABCD, WordDigits))
	assert.Equal(t, "0F", FormatHex(0xF, ByteDigits))
	assert.Equal(t, "1234567", FormatHex(0x1234567, 7))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange[uint64]("Value", 0, 0, Byte))
	assert.NoError(t, ValidateRange[uint64]("Value", Byte, 0, Byte))
	assert.NoError(t, ValidateRange[uint16]("Mask", 5, 5, 10))

	err := ValidateRange[uint64]("Value", Byte+1, 0, Byte)
	var rangeErr *RangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "Value", rangeErr.Attribute)
	assert.Equal(t, uint64(0), rangeErr.Low)
	assert.Equal(t, uint64(Byte), rangeErr.High)
	assert.Equal(t, uint64(Byte+1), rangeErr.Actual)
	assert.Equal(t, "Value should be between 00000000 and 000000FF but was 00000100", err.Error())

	err = ValidateRange[uint16]("Mask", 4, 5, 10)
	assert.ErrorContains(t, err, "Mask should be between 00000005 and 0000000A but was 00000004")
}

func TestValue(t *testing.T) {
	assert.Equal(t, "0x007B", Value(123, ShortDigits, false, false))
	assert.Equal(t, "0x007B(123)", Value(123, ShortDigits, true, false))
	assert.Equal(t, "0x007B /* 123 */", Value(123, ShortDigits, true, true))
	assert.Equal(t, "0x0000007B", Value(123, WordDigits, false, true))
}
