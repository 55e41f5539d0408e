package provider

import (
	"fmt"

	"BounceSentry/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars        map[string]model.PriceBar
	Histories   map[string][]float64
	FailSymbols map[string]bool // symbols whose fetches error out
}

// NewMockFetcher creates an empty mock; populate the maps per symbol.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{
		Bars:        make(map[string]model.PriceBar),
		Histories:   make(map[string][]float64),
		FailSymbols: make(map[string]bool),
	}
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBar(symbol string) (model.PriceBar, error) {
	if m.FailSymbols[symbol] {
		return model.PriceBar{}, fmt.Errorf("mock: fetch failed for %s", symbol)
	}
	bar, ok := m.Bars[symbol]
	if !ok {
		return model.PriceBar{}, fmt.Errorf("mock: no bar for %s", symbol)
	}
	return bar, nil
}

func (m *MockFetcher) FetchHistory(symbol string, days int) ([]float64, error) {
	if m.FailSymbols[symbol] {
		return nil, fmt.Errorf("mock: fetch failed for %s", symbol)
	}
	h, ok := m.Histories[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: no history for %s", symbol)
	}
	if len(h) > days {
		h = h[len(h)-days:]
	}
	return h, nil
}

// DecliningHistory builds `count` closes stepping down by `step`, then a
// final small bounce. Useful for driving the RSI deep into oversold.
func DecliningHistory(start float64, count int, step, bounce float64) []float64 {
	prices := make([]float64, count)
	p := start
	for i := 0; i < count-1; i++ {
		prices[i] = p
		p -= step
	}
	prices[count-1] = p + bounce
	return prices
}
