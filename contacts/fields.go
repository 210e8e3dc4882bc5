package contacts

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPhoneFormat    = errors.New("contacts: phone number must have 10 digits")
	ErrInvalidBirthdayFormat = errors.New("contacts: birthday must be formatted as DD.MM.YYYY")
	ErrInvalidDate           = errors.New("contacts: birthday is not a calendar date")
	ErrPhoneNotFound         = errors.New("contacts: phone number not found")
)

const phoneLen = 10

// Phone is a validated 10-digit phone number.
type Phone string

// ValidatePhone reports [ErrInvalidPhoneFormat] unless s holds exactly 10 decimal digits.
func ValidatePhone(s string) error {
	if len(s) != phoneLen {
		return ErrInvalidPhoneFormat
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return ErrInvalidPhoneFormat
		}
	}
	return nil
}

func ParsePhone(s string) (Phone, error) {
	if err := ValidatePhone(s); err != nil {
		return "", err
	}
	return Phone(s), nil
}

// birthdayPattern is not anchored at the end: trailing characters pass the
// format check and are rejected later by date construction.
var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}`)

const maxYear = 9999

const (
	BirthdayInputLayout   = "02.01.2006"
	BirthdayDisplayLayout = "02-01-2006"
)

// Birthday is a calendar date at midnight UTC.
type Birthday struct{ time.Time }

// ParseBirthday parses a DD.MM.YYYY string.
func ParseBirthday(s string) (Birthday, error) {
	if !birthdayPattern.MatchString(s) {
		return Birthday{}, ErrInvalidBirthdayFormat
	}

	fields := strings.Split(s, ".")
	if len(fields) != 3 { //nolint: mnd // day, month, year
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	var dmy [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		dmy[i] = n
	}

	day, month, year := dmy[0], time.Month(dmy[1]), dmy[2]
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if year < 1 || year > maxYear || t.Day() != day || t.Month() != month || t.Year() != year {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Birthday{t}, nil
}

// String formats b as DD.MM.YYYY, the layout accepted by [ParseBirthday].
func (b Birthday) String() string { return b.Format(BirthdayInputLayout) }
