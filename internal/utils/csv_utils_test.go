package utils

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kvbadhan/timeinmarket/internal/sip"
)

func sampleResult() *sip.Result {
	d := func(day int) time.Time { return time.Date(2021, 1, day, 0, 0, 0, 0, time.UTC) }
	return &sip.Result{
		Purchases: []sip.Purchase{
			{ScheduledDate: d(1), ExecutedDate: d(4), Price: decimal.NewFromInt(100), Units: decimal.NewFromInt(5)},
		},
		Series: []sip.ValuationPoint{
			{Date: d(4), PortfolioValue: decimal.NewFromInt(500), TotalInvested: decimal.NewFromInt(500)},
			{Date: d(5), PortfolioValue: decimal.NewFromInt(525), TotalInvested: decimal.NewFromInt(500),
				ProfitPct: decimal.NewFromInt(5)},
		},
	}
}

func TestWriteValuationSeries(t *testing.T) {
	mgr := NewCSVManager(t.TempDir())

	path, err := mgr.WriteValuationSeries("IWDA.AS", sampleResult())
	if err != nil {
		t.Fatalf("WriteValuationSeries: %v", err)
	}
	if !strings.Contains(path, "IWDA.AS") {
		t.Errorf("path %s should include the symbol", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read exported CSV: %v", err)
	}
	if len(rows) != 3 { // header + 2 points
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Date" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2021-01-04" || rows[1][1] != "500.0000" {
		t.Errorf("unexpected first data row: %v", rows[1])
	}
}

func TestWritePurchases(t *testing.T) {
	mgr := NewCSVManager(t.TempDir())

	path, err := mgr.WritePurchases("IWDA.AS", sampleResult())
	if err != nil {
		t.Fatalf("WritePurchases: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read exported CSV: %v", err)
	}
	if len(rows) != 2 { // header + 1 purchase
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1][1] != "2021-01-04" {
		t.Errorf("executed date = %s, want 2021-01-04", rows[1][1])
	}
}
