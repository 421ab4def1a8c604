package sip

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency selects one of the two supported schedule variants.
type Frequency int

const (
	Monthly Frequency = iota
	Weekly
)

func (f Frequency) String() string {
	switch f {
	case Monthly:
		return "monthly"
	case Weekly:
		return "weekly"
	default:
		return fmt.Sprintf("frequency(%d)", int(f))
	}
}

// Schedule defines a recurring investment instruction: a fixed Amount
// invested weekly on Weekday or monthly on DayOfMonth, starting at Start.
// Exactly one of Weekday/DayOfMonth is meaningful, selected by Frequency.
type Schedule struct {
	Frequency  Frequency
	Weekday    time.Weekday // Weekly only
	DayOfMonth int          // Monthly only, 1..31
	Amount     decimal.Decimal
	Start      time.Time
}

// Validate rejects a schedule before any simulation work happens.
func (s Schedule) Validate() error {
	if !s.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidSchedule, s.Amount)
	}
	switch s.Frequency {
	case Weekly:
		if s.Weekday < time.Sunday || s.Weekday > time.Saturday {
			return fmt.Errorf("%w: bad weekday %d", ErrInvalidSchedule, int(s.Weekday))
		}
	case Monthly:
		if s.DayOfMonth < 1 || s.DayOfMonth > 31 {
			return fmt.Errorf("%w: day of month must be in [1,31], got %d", ErrInvalidSchedule, s.DayOfMonth)
		}
	default:
		return fmt.Errorf("%w: unknown frequency %d", ErrInvalidSchedule, int(s.Frequency))
	}
	if s.Start.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidSchedule)
	}
	return nil
}

// Describe renders the schedule the way the summary panel shows it,
// e.g. "monthly on day 1" or "weekly on Mondays".
func (s Schedule) Describe() string {
	if s.Frequency == Weekly {
		return fmt.Sprintf("weekly on %ss", s.Weekday)
	}
	return fmt.Sprintf("monthly on day %d", s.DayOfMonth)
}

// Occurrences returns a fresh iterator over the nominal dates the schedule
// implies, starting at Start and continuing indefinitely. Callers bound it
// by the extent of their trading calendar. Each call restarts from Start.
func (s Schedule) Occurrences() *Occurrences {
	o := &Occurrences{sched: s}
	start := DateOnly(s.Start)
	switch s.Frequency {
	case Weekly:
		// First occurrence of the weekday on or after Start.
		offset := (int(s.Weekday) - int(start.Weekday()) + 7) % 7
		o.next = start.AddDate(0, 0, offset)
	default: // Monthly
		o.year, o.month = start.Year(), start.Month()
		first := nominalMonthly(o.year, o.month, s.DayOfMonth)
		if first.Before(start) {
			o.year, o.month = nextMonth(o.year, o.month)
		}
	}
	return o
}

// Occurrences lazily generates nominal schedule dates. The monthly variant
// keeps a year/month cursor so a February occurrence clamped to the 28th
// does not drift the following months off the requested day.
type Occurrences struct {
	sched Schedule
	next  time.Time  // Weekly cursor
	year  int        // Monthly cursor
	month time.Month // Monthly cursor
}

// Next returns the next nominal date and advances the iterator.
func (o *Occurrences) Next() time.Time {
	if o.sched.Frequency == Weekly {
		d := o.next
		o.next = o.next.AddDate(0, 0, 7)
		return d
	}
	d := nominalMonthly(o.year, o.month, o.sched.DayOfMonth)
	o.year, o.month = nextMonth(o.year, o.month)
	return d
}

// nominalMonthly places day in the given month, clamping to the month's
// last day when the month is too short (day 31 in April -> April 30).
// Short months never skip an occurrence; clamping is the documented policy.
func nominalMonthly(year int, month time.Month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// daysIn returns the number of days in a month; day 0 of the next month
// is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
