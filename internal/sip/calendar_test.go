package sip

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func points(days ...time.Time) []PricePoint {
	pts := make([]PricePoint, len(days))
	for i, d := range days {
		pts[i] = PricePoint{Date: d, Close: decimal.NewFromInt(100)}
	}
	return pts
}

func TestNewCalendarEmpty(t *testing.T) {
	if _, err := NewCalendar(nil); !errors.Is(err, ErrEmptyPriceHistory) {
		t.Fatalf("expected ErrEmptyPriceHistory, got %v", err)
	}
}

func TestNewCalendarUnsorted(t *testing.T) {
	pts := points(day(2021, 1, 5), day(2021, 1, 4))
	if _, err := NewCalendar(pts); !errors.Is(err, ErrUnsortedPriceHistory) {
		t.Fatalf("expected ErrUnsortedPriceHistory, got %v", err)
	}

	dup := points(day(2021, 1, 4), day(2021, 1, 4))
	if _, err := NewCalendar(dup); !errors.Is(err, ErrUnsortedPriceHistory) {
		t.Fatalf("expected ErrUnsortedPriceHistory for duplicate date, got %v", err)
	}
}

func TestNextTradingDay(t *testing.T) {
	// Mon-Wed of the first full week of 2021.
	cal, err := NewCalendar(points(day(2021, 1, 4), day(2021, 1, 5), day(2021, 1, 6)))
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}

	tests := []struct {
		name    string
		nominal time.Time
		want    time.Time
		wantOK  bool
	}{
		{"saturday rolls to monday", day(2021, 1, 2), day(2021, 1, 4), true},
		{"trading day maps to itself", day(2021, 1, 4), day(2021, 1, 4), true},
		{"mid-week trading day", day(2021, 1, 5), day(2021, 1, 5), true},
		{"past end of data", day(2021, 1, 7), time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cal.NextTradingDay(tt.nominal)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("resolved to %s, want %s",
					got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestCloseOn(t *testing.T) {
	pts := []PricePoint{
		{Date: day(2021, 1, 4), Close: decimal.NewFromInt(100)},
		{Date: day(2021, 1, 5), Close: decimal.NewFromInt(110)},
	}
	cal, err := NewCalendar(pts)
	if err != nil {
		t.Fatalf("NewCalendar: %v", err)
	}

	c, ok := cal.CloseOn(day(2021, 1, 5))
	if !ok || !c.Equal(decimal.NewFromInt(110)) {
		t.Fatalf("CloseOn(2021-01-05) = %s, %v; want 110, true", c, ok)
	}

	if _, ok := cal.CloseOn(day(2021, 1, 6)); ok {
		t.Error("expected no price on a non-trading day")
	}
}

func TestDateOnlyNormalizes(t *testing.T) {
	ts := time.Date(2021, 3, 1, 15, 30, 45, 0, time.UTC)
	if got := DateOnly(ts); !got.Equal(day(2021, 3, 1)) {
		t.Errorf("DateOnly(%s) = %s", ts, got)
	}
}
