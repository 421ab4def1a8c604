package sip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase records one executed schedule occurrence. ScheduledDate is the
// nominal date the schedule implied; ExecutedDate is the trading day the
// order actually filled on after rolling forward over closed markets.
type Purchase struct {
	ScheduledDate time.Time
	ExecutedDate  time.Time
	Price         decimal.Decimal
	Units         decimal.Decimal
}

// ValuationPoint is the mark-to-market state of the plan on one trading
// day. ProfitPct is expressed in percent and is zero until the first
// purchase lands.
type ValuationPoint struct {
	Date           time.Time
	PortfolioValue decimal.Decimal
	TotalInvested  decimal.Decimal
	ProfitPct      decimal.Decimal
}

// Result is the complete outcome of one simulation run: every executed
// purchase, the day-by-day valuation series, and the final KPIs. It is the
// only interface the rendering and storage layers see.
type Result struct {
	Purchases []Purchase
	Series    []ValuationPoint

	TotalInvested decimal.Decimal
	TotalUnits    decimal.Decimal
	FinalValue    decimal.Decimal
	Profit        decimal.Decimal
	ProfitPct     decimal.Decimal
}

// Empty reports whether the run produced no valuation points, which
// happens when the schedule starts after the last available trading day.
// That is a valid (if uninteresting) result, not an error.
func (r *Result) Empty() bool { return len(r.Series) == 0 }

var hundred = decimal.NewFromInt(100)

// Simulate runs a systematic investment plan against a historical daily
// price series and returns the resulting valuation time series. end, when
// non-zero, bounds the schedule; otherwise the price history does.
//
// Simulate is a pure function of its inputs: no clock, no I/O, no shared
// state. Two calls with identical inputs produce identical results, and
// independent runs may execute concurrently.
func Simulate(sched Schedule, prices []PricePoint, end time.Time) (*Result, error) {
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	cal, err := NewCalendar(prices)
	if err != nil {
		return nil, err
	}

	res := &Result{
		TotalInvested: decimal.Zero,
		TotalUnits:    decimal.Zero,
		FinalValue:    decimal.Zero,
		Profit:        decimal.Zero,
		ProfitPct:     decimal.Zero,
	}

	start := DateOnly(sched.Start)
	if start.After(cal.Last()) {
		return res, nil
	}
	if !end.IsZero() {
		end = DateOnly(end)
	}

	// Phase one: walk the schedule and execute purchases. The loop ends
	// when an occurrence rolls past the end of the price history — from
	// that point on the data cannot support further buys, though the
	// holdings keep being valued below. Two nominal dates may resolve to
	// the same trading day (short week against a month boundary); both
	// are distinct instructions and both execute.
	occ := sched.Occurrences()
	for {
		nominal := occ.Next()
		if !end.IsZero() && nominal.After(end) {
			break
		}
		exec, ok := cal.NextTradingDay(nominal)
		if !ok {
			break
		}
		price, _ := cal.CloseOn(exec)
		res.Purchases = append(res.Purchases, Purchase{
			ScheduledDate: nominal,
			ExecutedDate:  exec,
			Price:         price,
			Units:         sched.Amount.Div(price),
		})
	}

	// Phase two: one forward sweep over the calendar from the start date,
	// merging in the purchase list. Purchases are already ordered by
	// execution date, so each is applied exactly once as the sweep passes
	// it — no per-day rescan of the purchase list.
	units := decimal.Zero
	invested := decimal.Zero
	pi := 0
	for i := cal.indexOnOrAfter(start); i < cal.Len(); i++ {
		day := cal.Day(i)
		for pi < len(res.Purchases) && !res.Purchases[pi].ExecutedDate.After(day) {
			units = units.Add(res.Purchases[pi].Units)
			invested = invested.Add(sched.Amount)
			pi++
		}

		value := units.Mul(cal.Close(i))
		pct := decimal.Zero
		if invested.IsPositive() {
			pct = value.Sub(invested).Div(invested).Mul(hundred)
		}
		res.Series = append(res.Series, ValuationPoint{
			Date:           day,
			PortfolioValue: value,
			TotalInvested:  invested,
			ProfitPct:      pct,
		})
	}

	res.TotalUnits = units
	res.TotalInvested = invested
	if n := len(res.Series); n > 0 {
		last := res.Series[n-1]
		res.FinalValue = last.PortfolioValue
		res.Profit = last.PortfolioValue.Sub(last.TotalInvested)
		res.ProfitPct = last.ProfitPct
	}
	return res, nil
}
