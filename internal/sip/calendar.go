package sip

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one daily closing price observation. The simulation engine
// consumes a plain slice of these so it stays independent of whichever data
// source produced them.
type PricePoint struct {
	Date  time.Time
	Close decimal.Decimal
}

// Calendar is the set of trading days for an instrument, built from its
// historical price series. Immutable once constructed: dates are strictly
// increasing and each carries exactly one closing price.
type Calendar struct {
	days   []time.Time
	closes []decimal.Decimal
}

// NewCalendar builds a Calendar from an ordered daily price series.
// Dates are normalized to UTC midnight. An empty series yields
// ErrEmptyPriceHistory; out-of-order or duplicate dates yield
// ErrUnsortedPriceHistory since that breaks every lookup below.
func NewCalendar(prices []PricePoint) (*Calendar, error) {
	if len(prices) == 0 {
		return nil, ErrEmptyPriceHistory
	}

	cal := &Calendar{
		days:   make([]time.Time, len(prices)),
		closes: make([]decimal.Decimal, len(prices)),
	}
	for i, p := range prices {
		d := DateOnly(p.Date)
		if i > 0 && !cal.days[i-1].Before(d) {
			return nil, fmt.Errorf("%w: %s followed by %s",
				ErrUnsortedPriceHistory,
				cal.days[i-1].Format("2006-01-02"), d.Format("2006-01-02"))
		}
		cal.days[i] = d
		cal.closes[i] = p.Close
	}
	return cal, nil
}

// Len returns the number of trading days in the calendar.
func (c *Calendar) Len() int { return len(c.days) }

// First returns the earliest trading day.
func (c *Calendar) First() time.Time { return c.days[0] }

// Last returns the latest trading day.
func (c *Calendar) Last() time.Time { return c.days[len(c.days)-1] }

// Day returns the trading day at index i.
func (c *Calendar) Day(i int) time.Time { return c.days[i] }

// Close returns the closing price at index i.
func (c *Calendar) Close(i int) decimal.Decimal { return c.closes[i] }

// NextTradingDay resolves a nominal scheduled date to the day a standing
// order would actually fill: the date itself when markets were open, else
// the next trading day strictly after it. ok is false when the nominal date
// falls beyond the last day we have data for.
func (c *Calendar) NextTradingDay(nominal time.Time) (exec time.Time, ok bool) {
	nominal = DateOnly(nominal)
	i := sort.Search(len(c.days), func(i int) bool {
		return !c.days[i].Before(nominal)
	})
	if i == len(c.days) {
		return time.Time{}, false
	}
	return c.days[i], true
}

// CloseOn returns the closing price for an exact trading day.
func (c *Calendar) CloseOn(day time.Time) (decimal.Decimal, bool) {
	day = DateOnly(day)
	i := sort.Search(len(c.days), func(i int) bool {
		return !c.days[i].Before(day)
	})
	if i == len(c.days) || !c.days[i].Equal(day) {
		return decimal.Decimal{}, false
	}
	return c.closes[i], true
}

// indexOnOrAfter returns the index of the first trading day >= d,
// or Len() when no such day exists.
func (c *Calendar) indexOnOrAfter(d time.Time) int {
	d = DateOnly(d)
	return sort.Search(len(c.days), func(i int) bool {
		return !c.days[i].Before(d)
	})
}

// DateOnly truncates a timestamp to its calendar date at UTC midnight.
// All engine comparisons happen on these normalized dates.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
