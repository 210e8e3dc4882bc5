package contacts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"0123456789", true},
		{"9999999999", true},
		{"", false},
		{"12345", false},
		{"01234567890", false},
		{"012345678a", false},
		{"+123456789", false},
		{"012 345 67", false},
		{"０１２３４５６７８９", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidatePhone(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
			}
		})
	}
}

func TestValidatePhone_AllDigits(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		s := ""
		for range 10 {
			s += string(d)
		}
		assert.NoError(t, ValidatePhone(s))
		assert.ErrorIs(t, ValidatePhone(s[:9]), ErrInvalidPhoneFormat)
	}
}

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		in    string
		year  int
		month time.Month
		day   int
	}{
		{"15.06.2000", 2000, time.June, 15},
		{"01.01.0001", 1, time.January, 1},
		{"29.02.2024", 2024, time.February, 29},
		{"31.12.1999", 1999, time.December, 31},
		{"31.12.9999", 9999, time.December, 31},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, err := ParseBirthday(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.year, b.Year())
			assert.Equal(t, tt.month, b.Month())
			assert.Equal(t, tt.day, b.Day())
			assert.Equal(t, tt.in, b.String())
		})
	}
}

func TestParseBirthday_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidBirthdayFormat},
		{"2000-06-15", ErrInvalidBirthdayFormat},
		{"1.6.2000", ErrInvalidBirthdayFormat},
		{"15/06/2000", ErrInvalidBirthdayFormat},
		{"31.02.2024", ErrInvalidDate},
		{"29.02.2023", ErrInvalidDate},
		{"01.13.2000", ErrInvalidDate},
		{"00.01.2000", ErrInvalidDate},
		{"01.01.0000", ErrInvalidDate},
		{"15.06.2000.1", ErrInvalidDate},
		{"15.06.2000x", ErrInvalidDate},
		{"15.06.20001", ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseBirthday(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
