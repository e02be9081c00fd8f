// Package calendar projects dated training records onto a month grid the
// way a calendar widget consumes it: leading blanks up to the weekday of
// the 1st, then one cell per day.
package calendar

import "time"

type Event struct {
	Date        time.Time
	Title       string
	TrainerName string
}

// Month identifies a projected month. Navigation keeps Month in 1..12 and
// rolls the year over at either end.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Grid is the ordered cell sequence for one month. A nil cell is a leading
// placeholder before day 1; the count equals the weekday index of the 1st
// (Sunday = 0).
type Grid struct {
	Month Month
	Cells []*time.Time
}

// Project builds the day-cell sequence for a month.
func Project(m Month) Grid {
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]*time.Time, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, nil)
	}
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(m.Year, m.Month, d, 0, 0, 0, 0, time.UTC)
		cells = append(cells, &day)
	}
	return Grid{Month: m, Cells: cells}
}

// EventsOn returns every event landing on the cell's calendar day. A day
// can carry any number of events; callers render all of them.
func EventsOn(cell *time.Time, events []Event) []Event {
	if cell == nil {
		return nil
	}
	out := make([]Event, 0)
	for _, e := range events {
		if sameDay(e.Date, *cell) {
			out = append(out, e)
		}
	}
	return out
}

// IsToday compares by calendar date, not timestamp.
func IsToday(cell *time.Time, now time.Time) bool {
	if cell == nil {
		return false
	}
	return sameDay(*cell, now)
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}
