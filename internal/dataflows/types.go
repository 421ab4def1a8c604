package dataflows

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrSymbolNotFound means Yahoo's search returned no quotes for the
	// identifier, so it cannot be mapped to a tradable symbol.
	ErrSymbolNotFound = errors.New("no ticker symbol found")

	// ErrNoPriceData means the history request succeeded but returned
	// zero daily bars for the requested range.
	ErrNoPriceData = errors.New("no historical price data in range")
)

// Instrument is the result of resolving a human identifier (ISIN or
// ticker) against Yahoo's symbol search.
type Instrument struct {
	Identifier string `json:"identifier"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Exchange   string `json:"exchange"`
	QuoteType  string `json:"quote_type"`
}

// MarketData is one daily price bar.
type MarketData struct {
	Symbol string          `json:"symbol"`
	Date   time.Time       `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}
