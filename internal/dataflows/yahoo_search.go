package dataflows

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kvbadhan/timeinmarket/config"
)

// Yahoo rejects requests without a browser-looking User-Agent.
const searchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"

var identifierRe = regexp.MustCompile(`^[A-Z0-9.\-^=]+$`)

// SearchClient resolves ISINs and tickers to Yahoo Finance symbols via the
// public symbol search endpoint.
type SearchClient struct {
	client *resty.Client
	cache  *CacheManager
}

// NewSearchClient creates a symbol search client. Resolved symbols are
// cached for a week; ISIN-to-ticker mappings essentially never change.
func NewSearchClient(cfg *config.Config) *SearchClient {
	client := resty.New()
	client.SetBaseURL("https://query2.finance.yahoo.com")
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", searchUserAgent)

	cacheDir := filepath.Join(cfg.DataCacheDir, "yahoo_search")
	return &SearchClient{
		client: client,
		cache:  NewCacheManager(cacheDir, 7*24*time.Hour, cfg.CacheEnabled),
	}
}

// ValidateIdentifier checks that an ISIN or ticker has a plausible shape
// before it goes anywhere near the network.
func ValidateIdentifier(id string) error {
	id = strings.TrimSpace(strings.ToUpper(id))
	if id == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if len(id) > 20 {
		return fmt.Errorf("identifier too long: %s", id)
	}
	if !identifierRe.MatchString(id) {
		return fmt.Errorf("invalid identifier format: %s", id)
	}
	return nil
}

// Resolve maps an ISIN or ticker to its Yahoo Finance symbol and display
// name. Returns ErrSymbolNotFound when the search yields no quotes.
func (sc *SearchClient) Resolve(identifier string) (*Instrument, error) {
	if err := ValidateIdentifier(identifier); err != nil {
		return nil, err
	}
	identifier = strings.TrimSpace(strings.ToUpper(identifier))

	var cached Instrument
	if sc.cache.Get("yahoo", "search", identifier, &cached) {
		return &cached, nil
	}

	var result *Instrument
	err := WithRetry(DefaultRetryConfig(), func() error {
		resp, err := sc.client.R().
			SetQueryParam("q", identifier).
			Get("/v1/finance/search")
		if err != nil {
			return fmt.Errorf("symbol search for %s: %w", identifier, err)
		}
		if resp.StatusCode() != 200 {
			return fmt.Errorf("symbol search for %s: status %d", identifier, resp.StatusCode())
		}

		result, err = parseSearchResponse(identifier, resp.Body())
		return err
	})
	if err != nil {
		return nil, err
	}

	sc.cache.Set("yahoo", "search", identifier, result)
	return result, nil
}

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		LongName  string `json:"longname"`
		ShortName string `json:"shortname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// parseSearchResponse picks the first quote from a search payload, the
// same choice the original tooling made: Yahoo orders quotes by relevance
// and an ISIN identifies a single listing.
func parseSearchResponse(identifier string, body []byte) (*Instrument, error) {
	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parse search response for %s: %w", identifier, err)
	}
	if len(sr.Quotes) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrSymbolNotFound, identifier)
	}

	q := sr.Quotes[0]
	name := q.LongName
	if name == "" {
		name = q.ShortName
	}
	if name == "" {
		name = q.Symbol
	}
	return &Instrument{
		Identifier: identifier,
		Symbol:     q.Symbol,
		Name:       name,
		Exchange:   q.Exchange,
		QuoteType:  q.QuoteType,
	}, nil
}
