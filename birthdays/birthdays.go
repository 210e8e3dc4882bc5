// Package birthdays computes the weekly birthday report.
package birthdays

import (
	"strings"
	"time"

	"github.com/oaiiae/address-book/contacts"
)

const daysPerWeek = 7

// Day is one calendar day of a [Week].
type Day struct {
	Date  time.Time
	Names []string
}

// Week is the Monday to Sunday window following the week of the query date.
type Week [daysPerWeek]Day

// Window returns the first and last day of the week following today's week.
func Window(today time.Time) (start, end time.Time) {
	today = dateOf(today)
	weekday := (int(today.Weekday()) + 6) % daysPerWeek // Monday=0 .. Sunday=6
	start = today.AddDate(0, 0, daysPerWeek-weekday)
	return start, start.AddDate(0, 0, daysPerWeek-1)
}

// Weekly collects the records whose birthday, taken in today's year, falls
// within [Window]. Birthdays are never moved to the next year, and Feb 29
// has no occurrence outside leap years.
func Weekly(records []*contacts.Record, today time.Time) Week {
	start, end := Window(today)
	year := today.Year()

	var week Week
	for i := range week {
		week[i].Date = start.AddDate(0, 0, i)
	}

	for _, r := range records {
		b, ok := r.Birthday()
		if !ok {
			continue
		}
		occurrence := time.Date(year, b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
		if occurrence.Day() != b.Day() {
			continue
		}
		if occurrence.Before(start) || occurrence.After(end) {
			continue
		}
		i := int(occurrence.Sub(start).Hours()) / 24 //nolint: mnd // hours per day
		week[i].Names = append(week[i].Names, r.Name())
	}
	return week
}

// String renders one "<Weekday>: <names>" line per day with birthdays.
func (w Week) String() string {
	lines := make([]string, 0, len(w))
	for _, day := range w {
		if len(day.Names) > 0 {
			lines = append(lines, day.Date.Weekday().String()+": "+strings.Join(day.Names, ", "))
		}
	}
	return strings.Join(lines, "\n")
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
