package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func testRun(symbol string) RunRecord {
	return RunRecord{
		Identifier: "IE00B4L5Y983",
		Symbol:     symbol,
		Name:       "iShares Core MSCI World",
		Schedule:   "monthly on day 1",
		Amount:     "100",
		StartDate:  "2015-01-01",
		EndDate:    "2025-01-01",
		Purchases:  120,
		Invested:   "12000",
		FinalValue: "19543.21",
		ProfitPct:  "62.86",
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank db path")
	}
}

func TestSaveAndListRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, sym := range []string{"IWDA.AS", "VUSA.L", "AAPL"} {
		if err := store.SaveRun(ctx, testRun(sym)); err != nil {
			t.Fatalf("SaveRun(%s): %v", sym, err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Symbol != "AAPL" || runs[1].Symbol != "VUSA.L" {
		t.Errorf("unexpected order: %s, %s", runs[0].Symbol, runs[1].Symbol)
	}
	if runs[0].CreatedAt == "" {
		t.Error("expected created_at to be populated")
	}
}

func TestSaveRunValidation(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	bad := testRun("")
	if err := store.SaveRun(context.Background(), bad); err == nil {
		t.Fatal("expected error for missing symbol")
	}
}
