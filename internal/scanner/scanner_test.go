package scanner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BounceSentry/internal/model"
	"BounceSentry/internal/provider"
	"BounceSentry/internal/strategy"
	"BounceSentry/internal/universe"
)

// eliteData loads the mock with a bar and history that pass the full gate
// for symbol. The history lands the RSI at 25, mild enough that confidence
// stays off the 10.0 clamp, so volume controls the ranking.
func eliteData(m *provider.MockFetcher, symbol string, volume int64) {
	m.Bars[symbol] = model.PriceBar{Open: 100, High: 104, Low: 99, Close: 103, Volume: volume}
	prices := []float64{100}
	p := 100.0
	for i := 0; i < 14; i++ {
		if i < 7 {
			p += 1.0 / 7
		} else {
			p -= 3.0 / 7
		}
		prices = append(prices, p)
	}
	m.Histories[symbol] = prices
}

// quietData loads the mock with data that evaluates cleanly but produces no
// signal (neutral flat history).
func quietData(m *provider.MockFetcher, symbol string) {
	m.Bars[symbol] = model.PriceBar{Open: 100, High: 104, Low: 99, Close: 103, Volume: 150000}
	flat := make([]float64, 15)
	for i := range flat {
		flat[i] = 100
	}
	m.Histories[symbol] = flat
}

func newScanner(m *provider.MockFetcher, symbols []string) *Scanner {
	baselines := universe.NewBaselines(nil, 50000)
	return New(m, symbols, baselines, strategy.DefaultParams())
}

func TestRun_Continuity(t *testing.T) {
	m := provider.NewMockFetcher()
	symbols := []string{"AAA", "BBB", "CCC", "DDD", "EEE"}
	for _, s := range symbols {
		quietData(m, s)
	}
	m.FailSymbols["CCC"] = true

	rep := newScanner(m, symbols).Run(context.Background())

	assert.Equal(t, 5, rep.Stats.Attempted)
	assert.Equal(t, 4, rep.Stats.Succeeded)
	assert.Equal(t, 1, rep.Stats.Failed)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, "CCC", rep.Failures[0].Symbol)
	assert.Equal(t, model.OutcomeMissingData, rep.Failures[0].Outcome)
}

func TestRun_RankedByConfidence(t *testing.T) {
	m := provider.NewMockFetcher()
	// Higher volume means higher confidence, up to the cap.
	eliteData(m, "LOW", 130000)  // 2.6x
	eliteData(m, "MID", 160000)  // 3.2x
	eliteData(m, "HIGH", 200000) // 4.0x
	rep := newScanner(m, []string{"LOW", "HIGH", "MID"}).Run(context.Background())

	require.Len(t, rep.Signals, 3)
	assert.Equal(t, "HIGH", rep.Signals[0].Symbol)
	assert.Equal(t, "MID", rep.Signals[1].Symbol)
	assert.Equal(t, "LOW", rep.Signals[2].Symbol)
	assert.Equal(t, 3, rep.Stats.Signals)
}

func TestRun_StableTieOrder(t *testing.T) {
	m := provider.NewMockFetcher()
	symbols := []string{"T1", "T2", "T3"}
	for _, s := range symbols {
		eliteData(m, s, 150000) // identical inputs, identical confidence
	}
	rep := newScanner(m, symbols).Run(context.Background())

	require.Len(t, rep.Signals, 3)
	for i, want := range symbols {
		assert.Equal(t, want, rep.Signals[i].Symbol, "ties must keep encounter order")
	}
}

func TestRun_InsufficientHistoryCountsFailed(t *testing.T) {
	m := provider.NewMockFetcher()
	eliteData(m, "OK", 150000)
	m.Bars["SHORT"] = model.PriceBar{Open: 100, High: 104, Low: 99, Close: 103, Volume: 150000}
	m.Histories["SHORT"] = []float64{100, 101, 102} // < window+1

	rep := newScanner(m, []string{"OK", "SHORT"}).Run(context.Background())

	assert.Equal(t, 1, rep.Stats.Failed)
	require.Len(t, rep.Failures, 1)
	assert.Equal(t, model.OutcomeInsufficientHistory, rep.Failures[0].Outcome)
	assert.Len(t, rep.Signals, 1)
}

func TestRun_Cancelled(t *testing.T) {
	m := provider.NewMockFetcher()
	symbols := []string{"AAA", "BBB", "CCC"}
	for _, s := range symbols {
		quietData(m, s)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := newScanner(m, symbols).Run(ctx)
	assert.Equal(t, 0, rep.Stats.Attempted, "cancelled scan should not attempt symbols")
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	m := provider.NewMockFetcher()
	symbols := []string{"S1", "S2", "S3", "S4", "S5", "S6"}
	eliteData(m, "S1", 200000)
	eliteData(m, "S2", 150000)
	quietData(m, "S3")
	eliteData(m, "S4", 150000) // ties with S2
	quietData(m, "S5")
	m.FailSymbols["S6"] = true

	seq := newScanner(m, symbols)
	seqRep := seq.Run(context.Background())

	par := newScanner(m, symbols)
	par.Workers = 4
	parRep := par.Run(context.Background())

	assert.Equal(t, seqRep.Stats, parRep.Stats)
	require.Equal(t, len(seqRep.Signals), len(parRep.Signals))
	for i := range seqRep.Signals {
		assert.Equal(t, seqRep.Signals[i].Symbol, parRep.Signals[i].Symbol,
			"parallel ranking must match sequential, ties included")
	}
}

func TestRun_ReportHasID(t *testing.T) {
	m := provider.NewMockFetcher()
	quietData(m, "AAA")
	a := newScanner(m, []string{"AAA"}).Run(context.Background())
	b := newScanner(m, []string{"AAA"}).Run(context.Background())

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.FinishedAt.Before(a.StartedAt))
}
