package indicator

import (
	"math"
	"testing"

	"BounceSentry/internal/model"
)

func TestRSI_InvalidWindow(t *testing.T) {
	if _, err := RSI([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for zero window")
	}
	if _, err := RSI([]float64{1, 2, 3}, -5); err == nil {
		t.Error("expected error for negative window")
	}
}

func TestRSI_InsufficientHistory(t *testing.T) {
	prices := make([]float64, DefaultRSIWindow) // one short of window+1
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	rsi, err := RSI(prices, DefaultRSIWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != NeutralRSI {
		t.Errorf("expected neutral %.0f for short history, got %.2f", NeutralRSI, rsi)
	}
}

func TestRSI_AllGains(t *testing.T) {
	prices := make([]float64, DefaultRSIWindow+1)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	rsi, err := RSI(prices, DefaultRSIWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 100 {
		t.Errorf("expected 100 when losses average zero with gains, got %.2f", rsi)
	}
}

func TestRSI_AllLosses(t *testing.T) {
	prices := make([]float64, DefaultRSIWindow+1)
	for i := range prices {
		prices[i] = 200 - float64(i)
	}
	rsi, err := RSI(prices, DefaultRSIWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 0 {
		t.Errorf("expected 0 for pure downtrend, got %.2f", rsi)
	}
}

func TestRSI_FlatWindow(t *testing.T) {
	prices := make([]float64, DefaultRSIWindow+1)
	for i := range prices {
		prices[i] = 100
	}
	rsi, err := RSI(prices, DefaultRSIWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != NeutralRSI {
		t.Errorf("expected neutral %.0f for a flat window, got %.2f", NeutralRSI, rsi)
	}
}

func TestRSI_KnownValue(t *testing.T) {
	// 13 unit losses then a 0.5 bounce: rs = (0.5/14)/(13/14) = 0.5/13.
	prices := []float64{100}
	p := 100.0
	for i := 0; i < 13; i++ {
		p -= 1
		prices = append(prices, p)
	}
	prices = append(prices, p+0.5)

	rsi, err := RSI(prices, DefaultRSIWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 100 - 100/(1+0.5/13)
	if math.Abs(rsi-want) > 1e-9 {
		t.Errorf("expected RSI %.4f, got %.4f", want, rsi)
	}
}

func TestRSI_Bounds(t *testing.T) {
	seqs := [][]float64{
		{100, 101, 99, 103, 97, 105, 95, 107, 93, 109, 91, 111, 89, 113, 87},
		{50, 50.1, 50.2, 50.1, 50.3, 50.2, 50.4, 50.3, 50.5, 50.4, 50.6, 50.5, 50.7, 50.6, 50.8},
	}
	for _, prices := range seqs {
		rsi, err := RSI(prices, DefaultRSIWindow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rsi < 0 || rsi > 100 {
			t.Errorf("RSI out of bounds: %.2f", rsi)
		}
	}
}

func TestRSI_UsesOnlyLastWindow(t *testing.T) {
	// A long rally before the final 14 deltas must not leak into the result.
	long := make([]float64, 0, 40)
	p := 10.0
	for i := 0; i < 25; i++ {
		long = append(long, p)
		p += 5
	}
	tail := []float64{100, 99, 98, 97, 96, 95, 94, 93, 92, 91, 90, 89, 88, 87, 87.5}
	long = append(long, tail...)

	got, err := RSI(long, DefaultRSIWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := RSI(tail, DefaultRSIWindow)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("long history RSI %.4f differs from tail-only RSI %.4f", got, want)
	}
}

func TestVolumeRatio(t *testing.T) {
	tests := []struct {
		current  int64
		baseline int64
		want     float64
	}{
		{150000, 50000, 3.0},
		{25000, 50000, 0.5},
		{0, 50000, 0},
		{75000, 0, 1.0},  // neutral on missing baseline
		{75000, -1, 1.0}, // neutral on nonsense baseline
	}
	for _, tt := range tests {
		if got := VolumeRatio(tt.current, tt.baseline); got != tt.want {
			t.Errorf("VolumeRatio(%d, %d) = %.2f, want %.2f", tt.current, tt.baseline, got, tt.want)
		}
	}
}

func TestPriceStrength(t *testing.T) {
	tests := []struct {
		name string
		bar  model.PriceBar
		want float64
	}{
		{"top of range", model.PriceBar{Open: 100, High: 104, Low: 99, Close: 104}, 1.0},
		{"bottom of range", model.PriceBar{Open: 100, High: 104, Low: 99, Close: 99}, 0.0},
		{"four fifths", model.PriceBar{Open: 100, High: 104, Low: 99, Close: 103}, 0.8},
		{"zero range is neutral", model.PriceBar{Open: 100, High: 100, Low: 100, Close: 100}, 0.5},
		{"inverted range is neutral", model.PriceBar{Open: 100, High: 99, Low: 104, Close: 100}, 0.5},
		{"close above malformed high clamps", model.PriceBar{Open: 100, High: 101, Low: 99, Close: 102}, 1.0},
	}
	for _, tt := range tests {
		if got := PriceStrength(tt.bar); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: PriceStrength = %.3f, want %.3f", tt.name, got, tt.want)
		}
	}
}

func TestBullishCandle(t *testing.T) {
	if !BullishCandle(model.PriceBar{Open: 100, Close: 103}) {
		t.Error("close above open should be bullish")
	}
	if BullishCandle(model.PriceBar{Open: 100, Close: 98}) {
		t.Error("close below open should not be bullish")
	}
	if BullishCandle(model.PriceBar{Open: 100, Close: 100}) {
		t.Error("doji should not be bullish")
	}
}
