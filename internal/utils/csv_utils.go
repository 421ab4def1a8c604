package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kvbadhan/timeinmarket/internal/sip"
)

// CSVManager writes simulation output under a base results directory.
type CSVManager struct {
	basePath string
}

func NewCSVManager(basePath string) *CSVManager {
	return &CSVManager{basePath: basePath}
}

// WriteValuationSeries exports the day-by-day valuation series for a run
// to results/<symbol>/, returning the file path. The file carries one row
// per trading day so it drops straight into a spreadsheet.
func (c *CSVManager) WriteValuationSeries(symbol string, res *sip.Result) (string, error) {
	dirPath := filepath.Join(c.basePath, symbol)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("create results directory: %w", err)
	}

	filename := fmt.Sprintf("%s_sip_%s.csv", symbol, time.Now().Format("20060102_150405"))
	filePath := filepath.Join(dirPath, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Date", "Portfolio_Value", "Total_Invested", "Profit_Pct"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("write headers: %w", err)
	}

	for _, p := range res.Series {
		row := []string{
			p.Date.Format("2006-01-02"),
			p.PortfolioValue.StringFixed(4),
			p.TotalInvested.StringFixed(2),
			p.ProfitPct.StringFixed(4),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush CSV: %w", err)
	}
	return filePath, nil
}

// WritePurchases exports the executed purchase list next to the valuation
// series.
func (c *CSVManager) WritePurchases(symbol string, res *sip.Result) (string, error) {
	dirPath := filepath.Join(c.basePath, symbol)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("create results directory: %w", err)
	}

	filename := fmt.Sprintf("%s_purchases_%s.csv", symbol, time.Now().Format("20060102_150405"))
	filePath := filepath.Join(dirPath, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Scheduled_Date", "Executed_Date", "Price", "Units"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("write headers: %w", err)
	}

	for _, p := range res.Purchases {
		row := []string{
			p.ScheduledDate.Format("2006-01-02"),
			p.ExecutedDate.Format("2006-01-02"),
			p.Price.StringFixed(4),
			p.Units.StringFixed(6),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush CSV: %w", err)
	}
	return filePath, nil
}
