package dataflows

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"github.com/kvbadhan/timeinmarket/config"
	"github.com/kvbadhan/timeinmarket/internal/sip"
)

// HistoryClient fetches daily historical closing prices from Yahoo
// Finance.
type HistoryClient struct {
	cache  *CacheManager
	online bool
}

// NewHistoryClient creates a historical data client.
func NewHistoryClient(cfg *config.Config) *HistoryClient {
	cacheDir := filepath.Join(cfg.DataCacheDir, "yahoo_history")
	return &HistoryClient{
		cache:  NewCacheManager(cacheDir, 24*time.Hour, cfg.CacheEnabled),
		online: cfg.OnlineTools,
	}
}

// GetDailyHistory returns daily bars for symbol in [start, end], strictly
// ascending by date, trading days only. Bars without a positive close are
// dropped. Returns ErrNoPriceData when the range contains no usable bars.
func (hc *HistoryClient) GetDailyHistory(symbol string, start, end time.Time) ([]*MarketData, error) {
	cacheKey := map[string]interface{}{
		"symbol": symbol,
		"start":  start.Format("2006-01-02"),
		"end":    end.Format("2006-01-02"),
	}

	var cached []*MarketData
	if hc.cache.Get("yahoo", "daily", cacheKey, &cached) {
		return cached, nil
	}
	if !hc.online {
		return nil, fmt.Errorf("no cached data for %s and online tools are disabled", symbol)
	}

	var result []*MarketData
	err := WithRetry(DefaultRetryConfig(), func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}

		iter := chart.Get(params)
		result = result[:0]
		for iter.Next() {
			bar := iter.Bar()
			if !bar.Close.IsPositive() {
				continue
			}
			result = append(result, &MarketData{
				Symbol: symbol,
				Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
				Open:   bar.Open,
				High:   bar.High,
				Low:    bar.Low,
				Close:  bar.Close,
				Volume: int64(bar.Volume),
			})
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("fetch daily history for %s: %w", symbol, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s between %s and %s", ErrNoPriceData,
			symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })

	hc.cache.Set("yahoo", "daily", cacheKey, result)
	return result, nil
}

// ToPricePoints converts fetched bars to the engine's input series.
func ToPricePoints(bars []*MarketData) []sip.PricePoint {
	pts := make([]sip.PricePoint, len(bars))
	for i, b := range bars {
		pts[i] = sip.PricePoint{Date: b.Date, Close: b.Close}
	}
	return pts
}
