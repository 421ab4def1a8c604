package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kvbadhan/timeinmarket/config"
	"github.com/kvbadhan/timeinmarket/internal/dataflows"
	"github.com/kvbadhan/timeinmarket/internal/display"
	"github.com/kvbadhan/timeinmarket/internal/sip"
	"github.com/kvbadhan/timeinmarket/internal/storage/sqlite"
	"github.com/kvbadhan/timeinmarket/internal/utils"
)

// SimulationParams is the fully-validated user input for one run. The
// engine itself never sees raw strings.
type SimulationParams struct {
	Identifier string
	Amount     decimal.Decimal
	Frequency  sip.Frequency
	Weekday    time.Weekday
	DayOfMonth int
	Start      time.Time
	End        time.Time
}

// Schedule converts the params into the engine's schedule definition.
func (p SimulationParams) Schedule() sip.Schedule {
	return sip.Schedule{
		Frequency:  p.Frequency,
		Weekday:    p.Weekday,
		DayOfMonth: p.DayOfMonth,
		Amount:     p.Amount,
		Start:      p.Start,
	}
}

// runInteractiveMode walks the user through the prompt sequence and runs
// the resulting simulation.
func runInteractiveMode(cfg *config.Config) error {
	ShowWelcomeBanner()

	var p SimulationParams
	var err error

	if p.Identifier, err = PromptForIdentifier(); err != nil {
		return err
	}
	if p.Amount, err = PromptForAmount(); err != nil {
		return err
	}
	if p.Frequency, err = PromptForFrequency(); err != nil {
		return err
	}
	switch p.Frequency {
	case sip.Weekly:
		if p.Weekday, err = PromptForWeekday(); err != nil {
			return err
		}
	default:
		if p.DayOfMonth, err = PromptForDayOfMonth(); err != nil {
			return err
		}
	}
	if p.Start, p.End, err = PromptForDateRange(cfg.DefaultYears); err != nil {
		return err
	}

	return runSimulation(cfg, p)
}

// runSimulation is the end-to-end workflow: resolve the identifier, fetch
// history, run the engine, render, persist.
func runSimulation(cfg *config.Config, p SimulationParams) error {
	fmt.Printf("🔍 Resolving %s...\n", p.Identifier)
	search := dataflows.NewSearchClient(cfg)
	inst, err := search.Resolve(p.Identifier)
	if err != nil {
		if errors.Is(err, dataflows.ErrSymbolNotFound) {
			fmt.Printf("❌ No ticker symbol found for %s. Check the ISIN and try again.\n", p.Identifier)
			return nil
		}
		return maybeTLSGuidance(err)
	}
	fmt.Printf("✅ Found: %s (%s)\n", inst.Name, inst.Symbol)

	fmt.Printf("📥 Fetching daily history from %s to %s...\n",
		p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
	history := dataflows.NewHistoryClient(cfg)
	bars, err := history.GetDailyHistory(inst.Symbol, p.Start, p.End)
	if err != nil {
		if errors.Is(err, dataflows.ErrNoPriceData) {
			fmt.Printf("❌ No historical price data for %s in the given range.\n", inst.Symbol)
			return nil
		}
		return maybeTLSGuidance(err)
	}

	fmt.Println("🧮 Calculating portfolio growth...")
	sched := p.Schedule()
	res, err := sip.Simulate(sched, dataflows.ToPricePoints(bars), p.End)
	if err != nil {
		return err
	}

	if res.Empty() {
		display.ShowEmptyResult(sched)
		return nil
	}

	display.ShowSummary(inst, sched, res)
	display.ShowChart(res)

	persistRun(cfg, inst, sched, p, res)
	return nil
}

// persistRun saves the run into the history DB and exports CSVs. Both are
// conveniences layered on a finished result, so failures warn rather
// than fail the simulation.
func persistRun(cfg *config.Config, inst *dataflows.Instrument, sched sip.Schedule, p SimulationParams, res *sip.Result) {
	csvMgr := utils.NewCSVManager(cfg.ResultsDir)
	if path, err := csvMgr.WriteValuationSeries(inst.Symbol, res); err != nil {
		fmt.Printf("⚠️  CSV export failed: %v\n", err)
	} else {
		fmt.Printf("💾 Valuation series: %s\n", path)
	}
	if path, err := csvMgr.WritePurchases(inst.Symbol, res); err != nil {
		fmt.Printf("⚠️  CSV export failed: %v\n", err)
	} else {
		fmt.Printf("💾 Purchases:        %s\n", path)
	}

	store, err := sqlite.Open(cfg.HistoryDB)
	if err != nil {
		fmt.Printf("⚠️  History DB unavailable: %v\n", err)
		return
	}
	defer store.Close()

	run := sqlite.RunRecord{
		Identifier: p.Identifier,
		Symbol:     inst.Symbol,
		Name:       inst.Name,
		Schedule:   sched.Describe(),
		Amount:     sched.Amount.StringFixed(2),
		StartDate:  p.Start.Format("2006-01-02"),
		EndDate:    p.End.Format("2006-01-02"),
		Purchases:  len(res.Purchases),
		Invested:   res.TotalInvested.StringFixed(2),
		FinalValue: res.FinalValue.StringFixed(2),
		ProfitPct:  res.ProfitPct.StringFixed(2),
	}
	if err := store.SaveRun(context.Background(), run); err != nil {
		fmt.Printf("⚠️  Could not record run: %v\n", err)
	}
}

// showHistory lists past runs from the history DB.
func showHistory(cfg *config.Config, limit int) error {
	store, err := sqlite.Open(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No simulation runs recorded yet.")
		return nil
	}

	fmt.Printf("%-18s %-12s %-22s %10s %12s %9s  %s\n",
		"When", "Symbol", "Plan", "Invested", "Final", "Profit%", "Period")
	for _, r := range runs {
		fmt.Printf("%-18s %-12s %-22s %10s %12s %8s%%  %s → %s\n",
			r.CreatedAt, r.Symbol, r.Schedule, r.Invested, r.FinalValue, r.ProfitPct,
			r.StartDate, r.EndDate)
	}
	return nil
}

// maybeTLSGuidance wraps a fetch error, printing the corporate-proxy
// remediation note when the failure smells like certificate interception.
func maybeTLSGuidance(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "certificate") || strings.Contains(msg, "x509") || strings.Contains(msg, "tls") {
		fmt.Println()
		fmt.Println("🔒 TLS certificate verification failed.")
		fmt.Println("If you are on a corporate network, a proxy may be intercepting the")
		fmt.Println("connection with its own certificate. To resolve it without weakening")
		fmt.Println("security policy:")
		fmt.Println("  1. Ask your IT team for the company's Root CA certificate (.pem)")
		fmt.Println("  2. Point SSL_CERT_FILE at that file and run this tool again:")
		fmt.Println("       export SSL_CERT_FILE=/path/to/corp-root-ca.pem")
		fmt.Println()
	}
	return err
}
