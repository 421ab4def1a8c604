package dataflows

import (
	"errors"
	"testing"
)

func TestParseSearchResponse(t *testing.T) {
	body := []byte(`{
		"quotes": [
			{"symbol": "IWDA.AS", "longname": "iShares Core MSCI World UCITS ETF",
			 "shortname": "ISHARES MSCI WOR A", "exchange": "AMS", "quoteType": "ETF"},
			{"symbol": "IWDA.L", "shortname": "ISHARES MSCI WOR A", "exchange": "LSE", "quoteType": "ETF"}
		]
	}`)

	inst, err := parseSearchResponse("IE00B4L5Y983", body)
	if err != nil {
		t.Fatalf("parseSearchResponse: %v", err)
	}
	if inst.Symbol != "IWDA.AS" {
		t.Errorf("symbol = %s, want first quote IWDA.AS", inst.Symbol)
	}
	if inst.Name != "iShares Core MSCI World UCITS ETF" {
		t.Errorf("name = %s, want the longname", inst.Name)
	}
	if inst.Identifier != "IE00B4L5Y983" {
		t.Errorf("identifier = %s", inst.Identifier)
	}
}

func TestParseSearchResponseNameFallbacks(t *testing.T) {
	shortOnly := []byte(`{"quotes": [{"symbol": "VUSA.L", "shortname": "VANGUARD S&P 500"}]}`)
	inst, err := parseSearchResponse("VUSA", shortOnly)
	if err != nil {
		t.Fatalf("parseSearchResponse: %v", err)
	}
	if inst.Name != "VANGUARD S&P 500" {
		t.Errorf("name = %s, want shortname fallback", inst.Name)
	}

	symbolOnly := []byte(`{"quotes": [{"symbol": "XYZ"}]}`)
	inst, err = parseSearchResponse("XYZ", symbolOnly)
	if err != nil {
		t.Fatalf("parseSearchResponse: %v", err)
	}
	if inst.Name != "XYZ" {
		t.Errorf("name = %s, want symbol fallback", inst.Name)
	}
}

func TestParseSearchResponseNotFound(t *testing.T) {
	_, err := parseSearchResponse("XX0000000000", []byte(`{"quotes": []}`))
	if !errors.Is(err, ErrSymbolNotFound) {
		t.Fatalf("expected ErrSymbolNotFound, got %v", err)
	}
}

func TestParseSearchResponseBadJSON(t *testing.T) {
	if _, err := parseSearchResponse("X", []byte(`{`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"IE00B4L5Y983", false},
		{"AAPL", false},
		{"ie00b4l5y983", false}, // case-folded before validation
		{"BRK.B", false},
		{"^GSPC", false},
		{"", true},
		{"THIS-IDENTIFIER-IS-FAR-TOO-LONG", true},
		{"BAD IDENT", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) err = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}
