package provider

import "BounceSentry/internal/model"

// Fetcher defines the interface for fetching market data for one symbol.
// Implementations own timeouts and retry policy; the scanner never retries.
type Fetcher interface {
	// FetchBar returns the most recent completed bar for symbol.
	FetchBar(symbol string) (model.PriceBar, error)

	// FetchHistory returns at least `days` closing prices for symbol,
	// oldest first, ending with the evaluation-day close.
	FetchHistory(symbol string, days int) ([]float64, error)

	Name() string
}
