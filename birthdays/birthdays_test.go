package birthdays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaiiae/address-book/contacts"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func record(t *testing.T, name, birthday string) *contacts.Record {
	t.Helper()
	r := contacts.NewRecord(name)
	if birthday != "" {
		require.NoError(t, r.SetBirthday(birthday))
	}
	return r
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		start time.Time
	}{
		{"monday", date(2025, time.June, 16), date(2025, time.June, 23)},
		{"tuesday", date(2025, time.June, 10), date(2025, time.June, 16)},
		{"sunday", date(2025, time.June, 15), date(2025, time.June, 16)},
		{"year end", date(2025, time.December, 24), date(2025, time.December, 29)},
		{"with clock", time.Date(2025, time.June, 10, 23, 59, 0, 0, time.Local), date(2025, time.June, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.today)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.start.AddDate(0, 0, 6), end)
			assert.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestWeekly(t *testing.T) {
	today := date(2025, time.June, 10) // Tuesday; window is June 16..22
	records := []*contacts.Record{
		record(t, "alice", "15.06.2000"),
		record(t, "bob", "18.06.1990"),
		record(t, "carol", ""),
		record(t, "dave", "22.06.1985"),
		record(t, "erin", "18.06.2001"),
		record(t, "frank", "16.06.1970"),
		record(t, "grace", "23.06.1970"),
	}

	week := Weekly(records, today)
	assert.Equal(t, "Monday: frank\nWednesday: bob, erin\nSunday: dave", week.String())
	assert.Equal(t, date(2025, time.June, 16), week[0].Date)
	assert.Empty(t, week[1].Names)
}

func TestWeekly_OutsideWindow(t *testing.T) {
	today := date(2025, time.June, 10)
	week := Weekly([]*contacts.Record{record(t, "Alice", "15.06.2000")}, today)
	assert.Empty(t, week.String())
}

func TestWeekly_WindowStartsNextDay(t *testing.T) {
	today := date(2025, time.June, 15) // Sunday
	week := Weekly([]*contacts.Record{record(t, "Alice", "16.06.2000")}, today)
	assert.Equal(t, "Monday: Alice", week.String())
}

func TestWeekly_NoYearRollover(t *testing.T) {
	today := date(2025, time.December, 24) // window is Dec 29..Jan 4
	records := []*contacts.Record{
		record(t, "newyear", "02.01.1999"),
		record(t, "eve", "30.12.1999"),
	}
	assert.Equal(t, "Tuesday: eve", Weekly(records, today).String())
}

func TestWeekly_LeapDay(t *testing.T) {
	records := []*contacts.Record{
		record(t, "leap", "29.02.2000"),
		record(t, "march", "01.03.2000"),
	}

	// 2025 has no Feb 29; it must not spill into March 1.
	assert.Equal(t, "Saturday: march", Weekly(records, date(2025, time.February, 19)).String())
	assert.Equal(t, "Thursday: leap\nFriday: march", Weekly(records, date(2024, time.February, 21)).String())
}

func TestWeekly_Empty(t *testing.T) {
	assert.Empty(t, Weekly(nil, date(2025, time.June, 10)).String())
}
